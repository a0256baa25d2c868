// Package server assembles the location service: registry, location
// provider, middleware stack, routes and the HTTP listener.
package server
