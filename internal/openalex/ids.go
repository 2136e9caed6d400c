// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openalex

import "strings"

// orcidURLPrefix is how OpenAlex renders ORCIDs in authorship records.
const orcidURLPrefix = "https://orcid.org/"

// IsORCID reports whether s looks like an ORCID, bare (0000-0002-1825-0097)
// or as an orcid.org URL. The final character may be the X checksum digit.
func IsORCID(s string) bool {
	s = strings.TrimPrefix(strings.TrimSpace(s), orcidURLPrefix)
	if len(s) != 19 {
		return false
	}
	for i, r := range s {
		switch i {
		case 4, 9, 14:
			if r != '-' {
				return false
			}
		case 18:
			if !(r >= '0' && r <= '9') && r != 'X' && r != 'x' {
				return false
			}
		default:
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

// NormalizeORCID strips the orcid.org URL prefix and upper-cases a trailing
// checksum X, yielding the bare 0000-0002-1825-0097 form used in filters
// and comparisons.
func NormalizeORCID(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), orcidURLPrefix)
	return strings.ToUpper(s)
}

// NormalizeAuthorID strips the openalex.org URL prefix and upper-cases the
// leading entity letter, yielding the bare A5023888391 form.
func NormalizeAuthorID(s string) string {
	s = ShortID(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// IsAuthorID reports whether s looks like an OpenAlex author ID (A followed
// by digits), bare or as an openalex.org URL.
func IsAuthorID(s string) bool {
	s = ShortID(strings.TrimSpace(s))
	if len(s) < 2 || (s[0] != 'A' && s[0] != 'a') {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
