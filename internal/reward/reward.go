// Package reward estimates the payout for a returned item based on its
// catalog reward range and condition tier.
package reward

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/myokyal/loopify/internal/catalog"
)

var numberPattern = regexp.MustCompile(`[\d,]+`)

// Estimate is a computed reward for one item/condition pair.
type Estimate struct {
	// Amount is the numeric value in MMK. Zero for unknown inputs.
	Amount int `json:"amount"`
	// Display is the formatted reward, e.g. "30,000 MMK" or "500 MMK/kg".
	Display string `json:"display"`
	// PerUnit is true when the item pays a fixed per-unit rate that
	// condition does not scale.
	PerUnit bool `json:"per_unit"`
}

// Calculate maps (category, item, condition) to a reward estimate.
//
// Per-unit rates ("500 MMK/kg") are returned unmodified. Range-based
// rewards take the lower bound of the range and scale it by the condition
// factor, rounding to the nearest whole MMK. Unknown items or conditions
// degrade to a zero estimate rather than an error.
func Calculate(categoryID, itemID, conditionID string) Estimate {
	item, ok := catalog.FindItem(categoryID, itemID)
	if !ok {
		return Estimate{Amount: 0, Display: "0 MMK"}
	}

	if strings.Contains(item.Reward, "/kg") {
		rate := parseAmount(item.Reward)
		return Estimate{Amount: rate, Display: item.Reward, PerUnit: true}
	}

	factor := 0.0
	if cond, ok := catalog.FindCondition(conditionID); ok {
		factor = cond.Factor
	}

	base := parseAmount(item.Reward)
	amount := int(float64(base)*factor + 0.5)
	return Estimate{Amount: amount, Display: FormatMMK(amount)}
}

// FormatMMK renders an amount with thousands separators and the MMK suffix.
func FormatMMK(amount int) string {
	return groupDigits(strconv.Itoa(amount)) + " MMK"
}

// parseAmount extracts the first number group from a reward string, so the
// lower bound of a range or the rate of a per-unit reward.
func parseAmount(s string) int {
	match := numberPattern.FindString(s)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(match, ",", ""))
	if err != nil {
		return 0
	}
	return n
}

// groupDigits inserts a comma every three digits from the right.
func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
