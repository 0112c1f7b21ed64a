package auth

import (
	"crypto/rand"
	"math/big"

	"workhours/config"
	"workhours/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	tokenAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	minTokenLength     = 16
	defaultTokenLength = 32
)

// randomTokenGenerator issues URL-safe alphanumeric tokens.
type randomTokenGenerator struct {
	length int
}

// NewRandomTokenGenerator is the constructor for randomTokenGenerator.
func NewRandomTokenGenerator(cfg *config.Config) service.TokenGenerator {
	length := defaultTokenLength
	if cfg != nil && cfg.Calendar != nil && cfg.Calendar.TokenLength > 0 {
		length = cfg.Calendar.TokenLength
	}
	if length < minTokenLength {
		length = minTokenLength
	}

	return &randomTokenGenerator{length: length}
}

// Generate draws each character uniformly from tokenAlphabet.
func (g *randomTokenGenerator) Generate() (string, error) {
	limit := big.NewInt(int64(len(tokenAlphabet)))
	out := make([]byte, g.length)
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(err, "read random source")
		}
		out[i] = tokenAlphabet[n.Int64()]
	}

	return string(out), nil
}
