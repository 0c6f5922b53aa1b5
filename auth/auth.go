// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"math/rand/v2"

	"github.com/google/uuid"
)

// fallbackCodeLen is the length of a voter code built when the UUID source fails.
const fallbackCodeLen = 8

// GenerateVoterCode creates the opaque code embedded in a voter's link.
// It is a random UUID, or an 8-character base36 string if the system
// random source is unavailable.
func GenerateVoterCode() string {
	return generateVoterCode(uuid.NewRandom)
}

func generateVoterCode(newUUID func() (uuid.UUID, error)) string {
	id, err := newUUID()
	if err != nil {
		return base36Code(fallbackCodeLen)
	}
	return id.String()
}

// base36Code builds a non-cryptographic code from 0-9 and a-z
func base36Code(n int) string {
	const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

	b := make([]byte, n)
	for i := range b {
		b[i] = base36Chars[rand.IntN(len(base36Chars))]
	}
	return string(b)
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// First 16 hex chars (64 bits)
	return hex.EncodeToString(sum[:8])
}
