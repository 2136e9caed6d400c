// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CitationSeries maps year to an aggregate citation count. Years with no
// citations in any contributing work are absent, not zero. Counts are
// never negative.
type CitationSeries map[int]int
