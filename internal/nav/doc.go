// Package nav exposes the navigation primitives of a host: the current
// location, the hash fragment and link opening.
//
// Hosts that lack a capability degrade silently. Opening a link is the one
// operation that can fail, and it fails with a *LinkOpenError rather than
// stopping the program.
package nav
