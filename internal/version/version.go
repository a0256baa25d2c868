// Package version reports the urlargs release.
package version

import "fmt"

const (
	Major = 0
	Minor = 1
	Patch = 0
)

// String returns the version as "major.minor.patch".
func String() string {
	return fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
}

// Packed returns the version as major<<24 | minor<<16 | patch, the form
// handed to JavaScript glue code so it can check compatibility.
func Packed() uint32 {
	return Major<<24 | Minor<<16 | Patch
}

// Unpack splits a packed version into its parts.
func Unpack(packed uint32) (major, minor, patch uint32) {
	return packed >> 24, (packed >> 16) & 0xff, packed & 0xffff
}

// Compatible reports whether a caller built against packed can talk to this
// release: the major versions match and, before 1.0, the minor versions too.
func Compatible(packed uint32) bool {
	major, minor, _ := Unpack(packed)
	if major != Major {
		return false
	}
	return Major > 0 || minor == Minor
}
