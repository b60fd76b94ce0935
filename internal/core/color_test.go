package core

import "testing"

func TestColorHex(t *testing.T) {
	tests := []struct {
		c        Color
		expected string
	}{
		{ColorBlack, "#000000"},
		{ColorWhite, "#ffffff"},
		{RGBA(0x12, 0xab, 0x07, 0), "#12ab07"},
	}

	for _, tc := range tests {
		if got := tc.c.Hex(); got != tc.expected {
			t.Errorf("Hex() = %q, expected %q", got, tc.expected)
		}
	}
}
