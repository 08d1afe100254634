package crypto

import (
	"fmt"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = `!@#$%^&*](}[){;:'"/?+~<.>,|\-`
)

// CharacterClass is one of the four selectable character categories.
type CharacterClass uint8

const (
	Uppercase CharacterClass = 1 << iota
	Lowercase
	Digit
	Symbol
)

// AllClasses lists every class in seeding order.
var AllClasses = []CharacterClass{Uppercase, Lowercase, Digit, Symbol}

// Alphabet returns the fixed characters of the class.
func (c CharacterClass) Alphabet() string {
	switch c {
	case Uppercase:
		return uppercaseChars
	case Lowercase:
		return lowercaseChars
	case Digit:
		return numberChars
	case Symbol:
		return symbolChars
	default:
		return ""
	}
}

func (c CharacterClass) String() string {
	switch c {
	case Uppercase:
		return "upper"
	case Lowercase:
		return "lower"
	case Digit:
		return "digit"
	case Symbol:
		return "symbol"
	default:
		return fmt.Sprintf("CharacterClass(%d)", uint8(c))
	}
}

// ClassSet is a bit set of enabled character classes. The zero value is empty.
type ClassSet uint8

// NewClassSet builds a set from individual classes.
func NewClassSet(classes ...CharacterClass) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s |= ClassSet(c)
	}
	return s
}

// ClassSetFromFlags builds a set from the four checkbox-style flags.
func ClassSetFromFlags(upper, lower, numbers, symbols bool) ClassSet {
	var s ClassSet
	if upper {
		s |= ClassSet(Uppercase)
	}
	if lower {
		s |= ClassSet(Lowercase)
	}
	if numbers {
		s |= ClassSet(Digit)
	}
	if symbols {
		s |= ClassSet(Symbol)
	}
	return s
}

// Has reports whether c is enabled.
func (s ClassSet) Has(c CharacterClass) bool {
	return s&ClassSet(c) != 0
}

// Classes returns the enabled classes in seeding order.
func (s ClassSet) Classes() []CharacterClass {
	var out []CharacterClass
	for _, c := range AllClasses {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of enabled classes.
func (s ClassSet) Len() int {
	return len(s.Classes())
}

// IsEmpty reports whether no class is enabled.
func (s ClassSet) IsEmpty() bool {
	return s.Len() == 0
}

// String renders the set as a comma separated list, e.g. "upper,digit".
func (s ClassSet) String() string {
	classes := s.Classes()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return strings.Join(names, ",")
}
