// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - auth: API key validation (X-API-Key header or api_key query) with skip prefixes.
//   - rayid: tags every request with a ray id (reusing an incoming X-Ray-ID),
//     stored in locals for logger.WithRayID and echoed in the response header.
//
// These middleware components are designed to be registered globally or per-route group
// in the main application setup.
package middleware
