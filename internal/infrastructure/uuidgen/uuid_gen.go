package uuidgen

import (
	"github.com/google/uuid"
	usecasecontract "github.com/senaitabera/wellspring/internal/usecase/contract"
)

// Generator implements the usecase IUUIDGenerator interface.
type Generator struct{}

// NewGenerator creates a new UUID generator.
func NewGenerator() usecasecontract.IUUIDGenerator {
	return &Generator{}
}

// NewUUID generates a new UUID.
func (g *Generator) NewUUID() string {
	return uuid.New().String()
}

// Ensure Generator implements the IUUIDGenerator interface
var _ usecasecontract.IUUIDGenerator = (*Generator)(nil)
