package model

import "strings"

// PadFIPS left-pads a FIPS code with zeros to the given width.
// Excel strips leading zeros from numeric cells, so "1001" means "01001".
// Empty input stays empty.
func PadFIPS(s string, width int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for len(s) < width {
		s = "0" + s
	}
	return s
}
