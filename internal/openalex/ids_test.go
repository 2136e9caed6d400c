// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openalex

import "testing"

func TestIsORCID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0000-0002-1825-0097", true},
		{"https://orcid.org/0000-0002-1825-0097", true},
		{"0000-0002-1825-009X", true},
		{"0000-0002-1825-009x", true},
		{" 0000-0002-1825-0097 ", true},
		{"0000-0002-1825-00971", false},
		{"0000-0002-1825-009", false},
		{"0000+0002-1825-0097", false},
		{"A5023888391", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsORCID(tt.in); got != tt.want {
			t.Errorf("IsORCID(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeORCID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://orcid.org/0000-0002-1825-0097", "0000-0002-1825-0097"},
		{"0000-0002-1825-009x", "0000-0002-1825-009X"},
		{"0000-0002-1825-0097", "0000-0002-1825-0097"},
	}
	for _, tt := range tests {
		if got := NormalizeORCID(tt.in); got != tt.want {
			t.Errorf("NormalizeORCID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsAuthorID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"A5023888391", true},
		{"a5023888391", true},
		{"https://openalex.org/A5023888391", true},
		{"A", false},
		{"W2741809807", false},
		{"A50abc", false},
		{"0000-0002-1825-0097", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsAuthorID(tt.in); got != tt.want {
			t.Errorf("IsAuthorID(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeAuthorID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://openalex.org/A5023888391", "A5023888391"},
		{"a5023888391", "A5023888391"},
		{"A5023888391", "A5023888391"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeAuthorID(tt.in); got != tt.want {
			t.Errorf("NormalizeAuthorID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("https://openalex.org/W2741809807"); got != "W2741809807" {
		t.Errorf("ShortID = %q, want W2741809807", got)
	}
	if got := ShortID("W2741809807"); got != "W2741809807" {
		t.Errorf("ShortID = %q, want unchanged", got)
	}
}
