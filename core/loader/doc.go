// Package loader provides the feature loading system for the HTTP facade.
//
// Each feature implements the Feature interface, which defines its lifecycle
// and route registration logic. The Manager holds the registry of available
// features, skips disabled ones, and mounts the rest on the Fiber router.
package loader
