// Package identity derives directory login identifiers from human names and
// checks whether a private address may receive the welcome mail.
package identity

import (
	"fmt"
	"regexp"
	"strings"
)

var normalizer = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
	" ", ".",
)

// Normalize maps a name fragment to a directory-safe token: surrounding
// whitespace trimmed, lowercased, German umlauts transliterated, internal
// spaces replaced with a period. Other characters pass through unchanged.
func Normalize(fragment string) string {
	lowered := strings.ToLower(strings.TrimSpace(fragment))
	return normalizer.Replace(lowered)
}

// LoginToken is the canonical "first.last" identifier. It is deterministic:
// the same names always yield the same token, so duplicate submissions
// collide in the directory rather than here.
func LoginToken(firstName, lastName string) string {
	return Normalize(firstName) + "." + Normalize(lastName)
}

var (
	addressShape   = regexp.MustCompile(`.@.`)
	blockedDomains = regexp.MustCompile(`@(outlook|hotmail|live|msn|passport)\.`)
)

// ValidationError reports a recipient address that may not receive the
// welcome mail.
type ValidationError struct {
	Address string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid email address %q: %s", e.Address, e.Reason)
}

// ValidateEmail applies the recipient policy: the address needs at least one
// character on each side of an @, and a handful of consumer webmail domains
// are not accepted. This is a policy check, not RFC 5322 validation.
func ValidateEmail(address string) error {
	if !addressShape.MatchString(address) {
		return &ValidationError{Address: address, Reason: "expected user@domain"}
	}
	if blockedDomains.MatchString(address) {
		return &ValidationError{Address: address, Reason: "consumer webmail domains are not accepted"}
	}
	return nil
}
