package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new random identifier. Products, bids and
// notification outbox records all share this ID scheme.
func GenerateID() string {
	return uuid.New().String()
}
