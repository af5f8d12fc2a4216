package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateRegistryBaseID produces the house-wide readable base id shared by
// all postings of one batch, e.g. "TXN-2026-417". Uniqueness is enforced by
// the ordinal suffix appended per leg plus the registry primary key; the
// random component only keeps ids non-guessable.
func GenerateRegistryBaseID(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return fmt.Sprintf("TXN-%d-%03d", now.Year(), n.Int64()), nil
}
