package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Round2 rounds a monetary amount to 2 decimal places, half away from zero.
// Every displayed figure in the system goes through this exactly once.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// FormatCurrency renders an amount with the rupee symbol and Indian digit
// grouping, e.g. ₹1,23,456.78.
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%s₹%s.%s", sign, groupIndian(intPart), fracPart)
}

// FormatNumber renders a count with Indian digit grouping and no decimals.
func FormatNumber(value int64) string {
	if value < 0 {
		return "-" + groupIndian(fmt.Sprint(-value))
	}
	return groupIndian(fmt.Sprint(value))
}

// Indian grouping: the last three digits form one group, every two digits
// after that form another (12,34,567).
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// FormatDate renders a timestamp as "02 Jan 2006"; the zero time renders as
// an em dash, matching how absent dates display.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02 Jan 2006")
}

func FormatPercentage(value float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, value)
}

// Ordinal returns 1st, 2nd, 3rd, 4th...
func Ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
