package shortener

import (
	"fmt"

	"github.com/jaevor/go-nanoid"
)

const (
	// Alphabet is the character set short codes are drawn from.
	Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultCodeLength is the length of generated short codes.
	DefaultCodeLength = 7
)

// NewCodeGenerator returns a random alphanumeric code generator of the given length.
func NewCodeGenerator(length int) (CodeGenerator, error) {
	gen, err := nanoid.CustomASCII(Alphabet, length)
	if err != nil {
		return nil, fmt.Errorf("create code generator: %w", err)
	}

	return gen, nil
}

// IsCode reports whether s has the shape of a generated code of the given length.
// It only checks length and character class.
func IsCode(s string, length int) bool {
	if len(s) != length {
		return false
	}

	for i := range len(s) {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}

	return true
}
