package utils

import "strings"

// Duration tiers offered across the fleet. A vehicle may omit tiers it does
// not offer, but it can never offer a tier outside this list.
const (
	Tier24h          = "24h"
	TierShortWeekend = "short-weekend"
	TierLongWeekend  = "long-weekend"
	TierShortWeek    = "short-week"
	TierFullWeek     = "full-week"
	TierMonth        = "month"
)

// tierDays maps each tier to its rental length in days.
var tierDays = map[string]int{
	Tier24h:          1,
	TierShortWeekend: 2,
	TierLongWeekend:  3,
	TierShortWeek:    5,
	TierFullWeek:     7,
	TierMonth:        30,
}

// tierOrder keeps listings and price tables in ascending duration.
var tierOrder = []string{Tier24h, TierShortWeekend, TierLongWeekend, TierShortWeek, TierFullWeek, TierMonth}

// AllTiers returns the global tier enumeration in display order.
func AllTiers() []string {
	out := make([]string, len(tierOrder))
	copy(out, tierOrder)
	return out
}

// IsValidTier reports whether name belongs to the global enumeration.
func IsValidTier(name string) bool {
	_, ok := tierDays[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// TierDays returns the day count for a tier, or 0 for an unknown tier.
func TierDays(name string) int {
	return tierDays[strings.ToLower(strings.TrimSpace(name))]
}

// NormalizeTier lowercases and trims a tier name so stored pricing tables and
// API input agree on keys.
func NormalizeTier(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
