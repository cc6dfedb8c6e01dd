package utils

import (
	"math/rand"
)

const transactionCodeLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TransactionCode builds a short uppercase alphanumeric code from the given
// random source. Callers that need determinism pass a seeded source.
func TransactionCode(r *rand.Rand) string {
	b := make([]byte, transactionCodeLength)
	for i := range b {
		b[i] = letterBytes[r.Intn(len(letterBytes))]
	}
	return string(b)
}
