// Package credential generates initial member passwords.
package credential

import (
	"errors"
	"strings"

	"github.com/sethvargo/go-password/password"
)

// Length of every generated password.
const Length = 12

const (
	digitsWanted = 2
	maxAttempts  = 100
)

// Generate produces a random password of Length characters drawn from
// lowercase, uppercase and digit alphabets, with every class represented at
// least once. The underlying generator is crypto/rand backed; it guarantees
// the digit count but not that both letter cases occur, so generation
// retries until the shape holds.
func Generate() (string, error) {
	for i := 0; i < maxAttempts; i++ {
		candidate, err := password.Generate(Length, digitsWanted, 0, false, true)
		if err != nil {
			return "", err
		}
		if strings.ContainsAny(candidate, password.LowerLetters) &&
			strings.ContainsAny(candidate, password.UpperLetters) {
			return candidate, nil
		}
	}
	return "", errors.New("credential: no password with required shape after retries")
}
