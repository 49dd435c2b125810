package services

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/custodia-labs/pdflock-cli/internal/core/domain"
)

// Generated passwords are exactly this long: one character from each of
// the four required sets plus twelve drawn from the full alphabet.
const (
	generatedPasswordLength = 16
	mandatoryCategoryCount  = 4
)

// PasswordGenerator produces random passwords that always satisfy the
// default password policy. Randomness comes from crypto/rand; the
// output protects a real document, so a seeded PRNG is not acceptable.
type PasswordGenerator struct {
	policy domain.PasswordPolicy
}

// NewPasswordGenerator creates a generator bound to the given policy.
// The policy is only consulted as a final invariant check; the
// construction itself guarantees every category requirement.
func NewPasswordGenerator(policy domain.PasswordPolicy) *PasswordGenerator {
	return &PasswordGenerator{policy: policy}
}

// Generate returns a fresh 16-character password. One character is drawn
// uniformly from each required set so the category constraints hold by
// construction, the remainder from the union of all sets, and the whole
// sequence is shuffled so the mandatory characters are not positionally
// predictable.
func (g *PasswordGenerator) Generate() (domain.Password, error) {
	mandatory := []string{
		domain.DigitChars,
		domain.UppercaseChars,
		domain.SpecialChars,
		domain.LowercaseChars,
	}

	buf := make([]byte, 0, generatedPasswordLength)
	for _, set := range mandatory {
		c, err := randomChar(set)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		buf = append(buf, c)
	}

	alphabet := domain.DigitChars + domain.UppercaseChars +
		domain.LowercaseChars + domain.SpecialChars
	for i := mandatoryCategoryCount; i < generatedPasswordLength; i++ {
		c, err := randomChar(alphabet)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		buf = append(buf, c)
	}

	if err := shuffle(buf); err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}

	password := domain.Password(buf)
	// Invariant, not an assumption: the result must satisfy the policy.
	if err := g.policy.Validate(string(password)); err != nil {
		return "", fmt.Errorf("generated password failed policy: %w", err)
	}
	return password, nil
}

// randomChar picks one character uniformly from the set.
func randomChar(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, err
	}
	return set[n.Int64()], nil
}

// shuffle performs a uniform Fisher-Yates shuffle in place.
func shuffle(buf []byte) error {
	for i := len(buf) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		j := n.Int64()
		buf[i], buf[j] = buf[j], buf[i]
	}
	return nil
}
