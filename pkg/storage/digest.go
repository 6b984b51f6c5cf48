package storage

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Digest returns the hex encoded BLAKE2b-256 sum of data, for identifying stored streams.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
