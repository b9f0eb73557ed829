package utils

import (
	"math/rand"
	"strings"
	"time"
)

const paymentReferenceLength = 12
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratePaymentReference builds a fallback payment reference for
// simulated payments where the client did not supply a provider id,
// e.g. PAY_8F3KQ072MZ4A.
func GeneratePaymentReference() string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	var b strings.Builder
	b.WriteString("PAY_")
	for i := 0; i < paymentReferenceLength; i++ {
		b.WriteByte(letterBytes[seededRand.Intn(len(letterBytes))])
	}
	return b.String()
}
