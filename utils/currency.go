package utils

import (
	"fmt"
	"strings"
)

// FormatNaira formats an amount the way the ordering pages show prices,
// e.g. 10500 -> "₦10,500.00".
func FormatNaira(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	sign := ""
	if strings.HasPrefix(integerPart, "-") {
		sign = "-"
		integerPart = integerPart[1:]
	}

	// Group the integer part in thousands.
	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	return sign + "₦" + strings.Join(groups, ",") + "." + decimalPart
}
