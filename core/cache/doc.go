// Package cache provides the response cache in front of the upstream catalog API.
//
// Two backends are available: an in-process TTL map and Redis. The Redis backend lets
// several API replicas share upstream responses, which matters because the public
// catalog API is rate limited per key.
package cache
