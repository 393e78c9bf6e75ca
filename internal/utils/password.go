package utils

import "unicode"

// Password strength bounds.
const (
	// MinPasswordScoreLength is the length at which a password starts scoring.
	MinPasswordScoreLength = 6
	// StrongPasswordLength is the length that earns the extra length point.
	StrongPasswordLength = 10
	// MaxPasswordScore is the highest score PasswordScore can return.
	MaxPasswordScore = 5
	// WeakPasswordScore is the score at or below which a password is considered weak.
	WeakPasswordScore = 2
)

// PasswordScore rates a password from 0 to 5.
// One point each for: minimum length, an uppercase letter, a digit,
// a symbol, and generous length. The score is advisory only;
// the identity service applies its own policy.
func PasswordScore(password string) int {
	if password == "" {
		return 0
	}

	var (
		score      int
		hasUpper   bool
		hasDigit   bool
		hasSymbol  bool
		runeLength int
	)

	for _, r := range password {
		runeLength++

		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSymbol = true
		}
	}

	if runeLength >= MinPasswordScoreLength {
		score++
	}

	if hasUpper {
		score++
	}

	if hasDigit {
		score++
	}

	if hasSymbol {
		score++
	}

	if runeLength >= StrongPasswordLength {
		score++
	}

	return score
}

// IsWeakPassword reports whether a password scores at or below the weak threshold.
func IsWeakPassword(password string) bool {
	return PasswordScore(password) <= WeakPasswordScore
}
