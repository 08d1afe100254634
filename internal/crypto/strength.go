package crypto

import "fmt"

// Strength is the qualitative rating of a generator configuration. It depends
// on the configuration only, never on a produced password.
type Strength int

const (
	Weak Strength = iota
	Medium
	Strong
)

func (s Strength) String() string {
	switch s {
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	default:
		return fmt.Sprintf("Strength(%d)", int(s))
	}
}

// Color returns the indicator colour for the tier.
func (s Strength) Color() string {
	switch s {
	case Strong:
		return "#0f0"
	case Medium:
		return "#ff0"
	default:
		return "#f00"
	}
}

// MarshalText encodes the tier by name.
func (s Strength) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Evaluate rates a configuration. The first matching rule wins:
// strong needs both letter cases, a digit or symbol and 8+ characters;
// medium needs one letter case, a digit or symbol and 6+ characters.
func Evaluate(length int, hasUpper, hasLower, hasNum, hasSym bool) Strength {
	hasExtra := hasNum || hasSym

	switch {
	case hasUpper && hasLower && hasExtra && length >= 8:
		return Strong
	case (hasUpper || hasLower) && hasExtra && length >= 6:
		return Medium
	default:
		return Weak
	}
}

// EvaluateClasses is Evaluate for a ClassSet.
func EvaluateClasses(length int, classes ClassSet) Strength {
	return Evaluate(length,
		classes.Has(Uppercase),
		classes.Has(Lowercase),
		classes.Has(Digit),
		classes.Has(Symbol),
	)
}
