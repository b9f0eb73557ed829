package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePaymentReference(t *testing.T) {
	ref := GeneratePaymentReference()

	assert.True(t, strings.HasPrefix(ref, "PAY_"))
	assert.Len(t, ref, len("PAY_")+paymentReferenceLength)

	for _, r := range strings.TrimPrefix(ref, "PAY_") {
		assert.Contains(t, letterBytes, string(r))
	}
}
