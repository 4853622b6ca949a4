package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const otpDigits = "0123456789"

// OTPGenerator produces fixed-length decimal codes from crypto randomness.
type OTPGenerator struct {
	Length int
}

// NewOTPGenerator returns a generator for codes of the given length.
func NewOTPGenerator(length int) *OTPGenerator {
	return &OTPGenerator{Length: length}
}

// Generate returns a fresh code. Each digit is drawn uniformly.
func (g *OTPGenerator) Generate() (string, error) {
	if g.Length <= 0 {
		return "", fmt.Errorf("otp length must be positive, got %d", g.Length)
	}
	max := big.NewInt(int64(len(otpDigits)))
	code := make([]byte, g.Length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		code[i] = otpDigits[n.Int64()]
	}
	return string(code), nil
}
