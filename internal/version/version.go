// Package version compares dot-separated version strings such as the ones
// reported by cmake and compiler --version probes.
package version

import (
	"strconv"
	"strings"
)

// Triple is a major.minor.patch version. Components missing from the parsed
// string are zero.
type Triple struct {
	Major int
	Minor int
	Patch int
}

// ParseTriple parses up to three dot-separated integer components.
// Non-numeric or missing components are zero.
func ParseTriple(s string) Triple {
	var t Triple
	parts := strings.Split(s, ".")
	if len(parts) > 0 {
		t.Major = atoi(parts[0])
	}
	if len(parts) > 1 {
		t.Minor = atoi(parts[1])
	}
	if len(parts) > 2 {
		t.Patch = atoi(parts[2])
	}
	return t
}

func (t Triple) String() string {
	return strconv.Itoa(t.Major) + "." + strconv.Itoa(t.Minor) + "." + strconv.Itoa(t.Patch)
}

// Compare compares two dot-separated version strings component-wise.
// The shorter version is right-padded with zeros, so "3.5" == "3.5.0".
// It returns -1 if a < b, 0 if a == b, +1 if a > b.
func Compare(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		var av, bv int
		if i < len(as) {
			av = atoi(as[i])
		}
		if i < len(bs) {
			bv = atoi(bs[i])
		}
		if av != bv {
			if av > bv {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Extract returns the first digit-led run of digits and dots in blob, or ""
// if blob contains no digits. It is used to pull "3.22.1" out of raw probe
// output like "cmake version 3.22.1".
func Extract(blob string) string {
	start := -1
	for i := 0; i < len(blob); i++ {
		c := blob[i]
		if start < 0 {
			if c >= '0' && c <= '9' {
				start = i
			}
			continue
		}
		if (c < '0' || c > '9') && c != '.' {
			return blob[start:i]
		}
	}
	if start < 0 {
		return ""
	}
	return blob[start:]
}

// atoi parses a decimal component, treating anything unparseable as 0.
func atoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
