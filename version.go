package sqlast

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a dialect server version (major.minor.patch). A Context
// stores the parsed version for callers to inspect; the compiler itself
// does not consult it, and each dialect's Features are fixed.
type Version struct {
	Major, Minor, Patch int
}

// ParseVersion parses a "major", "major.minor", or "major.minor.patch"
// string. Missing components default to zero.
func ParseVersion(s string) (Version, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ".", 3)
	var nums [3]int
	for i, p := range parts {
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, NewCompileError("invalid version %q: %v", s, err)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String renders the version as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// AtLeast reports whether v is greater than or equal to other.
func (v Version) AtLeast(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor > other.Minor
	}
	return v.Patch >= other.Patch
}
