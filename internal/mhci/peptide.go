package mhci

import (
	"fmt"
	"sort"
	"strings"
)

// Peptide is a validated amino-acid sequence, uppercase, with residues
// drawn from Alphabet. Build one with Validate.
type Peptide string

// ValidationKind distinguishes the ways a raw peptide can be rejected.
type ValidationKind int

const (
	// InvalidCharacter means the sequence holds residues outside Alphabet.
	InvalidCharacter ValidationKind = iota

	// InvalidLength means the sequence is outside the configured bounds.
	InvalidLength
)

// ValidationError reports why a raw peptide string was rejected.
type ValidationError struct {
	Kind    ValidationKind
	Peptide string

	// Invalid holds the offending characters, deduplicated and sorted,
	// when Kind is InvalidCharacter.
	Invalid []string

	// Length and the bounds it violated, when Kind is InvalidLength.
	Length    int
	MinLength int
	MaxLength int
}

func (e *ValidationError) Error() string {
	if e.Kind == InvalidCharacter {
		return fmt.Sprintf("peptide %q contains invalid characters: %s", e.Peptide, strings.Join(e.Invalid, ", "))
	}
	return fmt.Sprintf("peptide %q length %d not in range %d-%d", e.Peptide, e.Length, e.MinLength, e.MaxLength)
}

// Validate normalizes a raw peptide string (trim surrounding whitespace,
// uppercase) and checks it against Alphabet and the inclusive length
// bounds. It is a pure function; a failure of one peptide never affects
// another.
func Validate(raw string, minLength, maxLength int) (Peptide, error) {
	seq := strings.ToUpper(strings.TrimSpace(raw))

	seen := make(map[byte]bool)
	var invalid []string
	for i := 0; i < len(seq); i++ {
		c := seq[i]
		if strings.IndexByte(Alphabet, c) < 0 && !seen[c] {
			seen[c] = true
			invalid = append(invalid, string(c))
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return "", &ValidationError{
			Kind:    InvalidCharacter,
			Peptide: seq,
			Invalid: invalid,
		}
	}

	if len(seq) < minLength || len(seq) > maxLength {
		return "", &ValidationError{
			Kind:      InvalidLength,
			Peptide:   seq,
			Length:    len(seq),
			MinLength: minLength,
			MaxLength: maxLength,
		}
	}

	return Peptide(seq), nil
}
