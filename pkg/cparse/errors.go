package cparse

import "fmt"

// errParse builds the single error value returned at a public entry-point
// boundary. Internally every production signals failure with a plain bool;
// this is the one place that outcome is promoted to an error. No location
// or context is attached: the caller observes a binary parsed / could-not-
// parse outcome.
func errParse(kind string) error {
	return fmt.Errorf("cparse: could not parse %s", kind)
}
