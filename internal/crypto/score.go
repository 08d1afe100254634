package crypto

import zxcvbn "github.com/ccojocar/zxcvbn-go"

// Score estimates how hard a concrete password is to guess, from 0 (trivial)
// to 4 (very hard). Unlike Evaluate it looks at the characters themselves.
func Score(password string) int {
	if password == "" {
		return 0
	}
	return zxcvbn.PasswordStrength(password, nil).Score
}
