package shortener

import (
	"regexp"
	"time"
)

const (
	// MinCodeLength and MaxCodeLength bound both custom and generated codes.
	MinCodeLength = 3
	MaxCodeLength = 20
)

var codePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,20}$`)

// Code represents a short URL code.
type Code string

// Valid reports whether the code satisfies the alphabet and length constraint.
func (c Code) Valid() bool {
	return codePattern.MatchString(string(c))
}

// ShortURL represents a registry entry. Entries are never mutated after creation.
type ShortURL struct {
	Code        Code
	OriginalURL string
	IsCustom    bool
	CreatedAt   time.Time
}
