// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a dollar amount with comma separators.
// e.g., 1287.5 -> "$1,288", 30000 -> "$30,000"
func FormatMoney(v float64) string {
	return "$" + FormatNumber(int64(math.Round(v)))
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a percentage value (already scaled to 0-100).
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatRatio formats a rent-to-average ratio.
// e.g., 1.247 -> "1.25x"
func FormatRatio(r float64) string {
	return fmt.Sprintf("%.2fx", r)
}

// BedroomLabel names a bedroom count for display.
func BedroomLabel(bedrooms int) string {
	if bedrooms == 0 {
		return "Studio"
	}
	return fmt.Sprintf("%d BR", bedrooms)
}

// FormatHousehold names a household size for compact axis labels.
// e.g., 4 -> "4p"
func FormatHousehold(size int) string {
	return strconv.Itoa(size) + "p"
}
