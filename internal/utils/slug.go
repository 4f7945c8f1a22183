package utils

import "strings"

// Slugify builds a catalogue slug from brand and model, e.g.
// ("Audi", "R8 V8") -> "audi-r8-v8".
func Slugify(parts ...string) string {
	joined := strings.ToLower(strings.Join(parts, " "))
	var b strings.Builder
	lastDash := true
	for _, r := range joined {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
