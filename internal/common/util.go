package common

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Alphanumeric is the alphabet used for migration tokens.
const Alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// MakeRandAlphanumString returns a string of exactly length characters drawn
// uniformly from Alphanumeric using crypto/rand.
//
// It returns an error for a non-positive length or if the random number
// generator fails.
func MakeRandAlphanumString(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("random string length must be positive, got %d", length)
	}

	max := big.NewInt(int64(len(Alphanumeric)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = Alphanumeric[n.Int64()]
	}

	return string(b), nil
}

// WipeBytes zeroes b in place. Use it on secrets read from the terminal
// once they have been copied where they are needed.
func WipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
