package usecase

import (
	"payler_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// UUIDGenerator issues correlation identifiers from a version 4 UUID, which
// reads 128 bits from crypto/rand and formats them as 8-4-4-4-12 hex.
type UUIDGenerator struct{}

var _ interfaces.IIDGenerator = UUIDGenerator{}

func (UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
