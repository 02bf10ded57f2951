// Package logger builds the zap logger shared by the server and the CLI.
//
// Level selects the preset: debug uses zap's development config, anything else the
// production config at that level. Format switches between json and a colored console
// encoder for local runs.
//
// Request handlers log through WithRayID so every line of one request carries the
// same ray_id field set by the rayid middleware:
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Upstream lookup failed", zap.String("league", league), zap.Error(err))
package logger
