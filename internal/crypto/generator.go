package crypto

import (
	"errors"
)

const (
	MinLength = 1
	MaxLength = 20
)

var (
	ErrInvalidLength    = errors.New("password length must be between 1 and 20")
	ErrNoCharacterTypes = errors.New("at least one character type must be selected")
)

// Generator produces passwords from an injected random source.
type Generator struct {
	src RandSource
}

// NewGenerator creates a Generator. A nil src falls back to CryptoSource.
func NewGenerator(src RandSource) *Generator {
	if src == nil {
		src = NewCryptoSource()
	}
	return &Generator{src: src}
}

// Generate returns a password of exactly length characters drawn from the
// enabled classes. An empty class set yields "" and no error.
//
// One character of each enabled class is placed first, capped at length
// classes, so every class is represented whenever length allows it. The rest
// is filled by picking a class and then a character, and the whole buffer is
// shuffled.
func (g *Generator) Generate(length int, classes ClassSet) (string, error) {
	if length < MinLength || length > MaxLength {
		return "", ErrInvalidLength
	}

	enabled := classes.Classes()
	if len(enabled) == 0 {
		return "", nil
	}

	result := make([]byte, 0, length)

	seeded := min(length, len(enabled))
	for _, c := range enabled[:seeded] {
		result = append(result, g.pick(c.Alphabet()))
	}

	for len(result) < length {
		c := enabled[g.src.IntRange(0, len(enabled))]
		result = append(result, g.pick(c.Alphabet()))
	}

	g.shuffle(result)

	return string(result), nil
}

// pick returns a uniformly chosen character of charset.
func (g *Generator) pick(charset string) byte {
	return charset[g.src.IntRange(0, len(charset))]
}

// shuffle performs a Fisher-Yates shuffle.
func (g *Generator) shuffle(data []byte) {
	for i := len(data) - 1; i > 0; i-- {
		j := g.src.IntRange(0, i+1)
		data[i], data[j] = data[j], data[i]
	}
}

// Generate creates a password with the default crypto-backed source.
func Generate(length int, classes ClassSet) (string, error) {
	return NewGenerator(nil).Generate(length, classes)
}
