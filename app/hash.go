package app

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// hashString returns the fixed-width uppercase hex digest used as a
// surrogate key for paths and names. It accelerates comparisons; it is
// not an identity guarantee.
func hashString(s string) string {
	return fmt.Sprintf("%016X", xxhash.Sum64String(s))
}
