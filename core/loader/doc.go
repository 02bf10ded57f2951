// Package loader registers the HTTP features of the service and mounts them on startup.
//
// A feature reports its name, whether its dependencies are available and how to mount
// its routes. Manager.LoadAll skips disabled features, so the server still starts when
// the favourites database or snapshot storage is unreachable.
package loader
