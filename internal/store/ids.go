package store

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

const (
	orderIDPrefix       = "DH"
	paymentIDPrefix     = "PAY"
	transactionIDPrefix = "TXN"
)

// Order and payment ids are short enough to read over the phone; callers
// insert them through database.WithRetry so a collision just draws again.
func generateOrderID() string {
	return shortID(orderIDPrefix)
}

func generatePaymentID() string {
	return shortID(paymentIDPrefix)
}

func generateTransactionID() string {
	return transactionIDPrefix + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

func shortID(prefix string) string {
	u := uuid.New()
	return prefix + strings.ToUpper(hex.EncodeToString(u[:8]))
}
