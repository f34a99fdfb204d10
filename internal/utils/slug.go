package utils

import "strings"

// GenerateSlug derives the URL identifier for a post from its title:
// lowercase, every run of non-alphanumeric characters collapsed to a single
// hyphen, leading and trailing hyphens trimmed. Applying it to an existing
// slug is a no-op, so re-slugging on title edits is safe.
func GenerateSlug(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastHyphen := true // suppresses a leading hyphen
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimRight(b.String(), "-")
}
