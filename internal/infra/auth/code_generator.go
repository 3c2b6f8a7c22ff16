package auth

import (
	"crypto/rand"
	"encoding/hex"

	"panel/internal/domain/service"

	"github.com/pkg/errors"
)

// hexCodeGenerator sources short lowercase-hex codes from crypto/rand.
type hexCodeGenerator struct{}

// NewCodeGenerator is the constructor for hexCodeGenerator.
func NewCodeGenerator() service.CodeGenerator {
	return &hexCodeGenerator{}
}

// Generate returns exactly length lowercase hex characters. For odd lengths
// one extra byte of entropy is drawn and the encoding truncated.
func (g *hexCodeGenerator) Generate(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("code length must be positive")
	}

	raw := make([]byte, (length+1)/2)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(raw)[:length], nil
}
