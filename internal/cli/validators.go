package cli

import (
	"fmt"
	"regexp"
	"strings"
)

var scriptNameRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidateScriptName checks that a name is usable as a file name:
// lowercase words separated by single hyphens.
func ValidateScriptName(name string) error {
	if name == "" {
		return fmt.Errorf("script name is required")
	}
	if len(name) > 64 {
		return fmt.Errorf("script name is too long (max 64 characters)")
	}
	if !scriptNameRe.MatchString(name) {
		return fmt.Errorf("invalid script name %q: use lowercase letters, digits and hyphens", name)
	}
	return nil
}

// Slugify derives a valid script name from a free-form title.
func Slugify(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	lastHyphen := true
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
