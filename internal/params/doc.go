// Package params translates URL query parameters into a command-line style
// argument vector and parses such arguments back into names and values.
//
// Formatting rules:
//   - k=1            → -k=1   (single-scalar keys get one dash)
//   - begin          → --begin
//   - something=a b  → --something=a b
//
// Element 0 of every vector is the location path, as argv[0] is the program.
// A key given with an empty value formats without '=', so after a round trip
// an empty value is indistinguishable from no value.
package params
