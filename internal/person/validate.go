package person

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLogTitleLength caps the number of runes in a log title.
const MaxLogTitleLength = 60

var (
	namePattern  = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	phonePattern = regexp.MustCompile(`^\+?\d{3,}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)*\.[a-zA-Z]{2,}$`)
	tagPattern   = regexp.MustCompile(`^[\p{L}\p{N}_\-]+$`)
)

// IsValidName reports whether name can identify a friend.
func IsValidName(name string) bool {
	return namePattern.MatchString(name)
}

// IsValidPhone accepts digits with an optional leading +. Spaces and dashes are ignored.
func IsValidPhone(phone string) bool {
	clean := strings.NewReplacer(" ", "", "-", "").Replace(phone)
	return phonePattern.MatchString(clean)
}

// IsValidEmail reports whether email looks like local@domain.tld.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidAddress accepts any non-blank single line.
func IsValidAddress(address string) bool {
	return strings.TrimSpace(address) != "" && !strings.ContainsAny(address, "\r\n")
}

// IsValidTag reports whether tag is usable as a label.
func IsValidTag(tag string) bool {
	return tagPattern.MatchString(tag)
}

// IsValidLogTitle reports whether title is a non-blank single line of at most
// MaxLogTitleLength runes that does not start with whitespace.
func IsValidLogTitle(title string) bool {
	if strings.TrimSpace(title) == "" {
		return false
	}
	if strings.ContainsAny(title, "\r\n") {
		return false
	}
	first, _ := utf8.DecodeRuneInString(title)
	if unicode.IsSpace(first) {
		return false
	}
	return utf8.RuneCountInString(title) <= MaxLogTitleLength
}
