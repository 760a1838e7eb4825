package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type EntityID string

// NewEntityID generates a new unique EntityID
func NewEntityID() EntityID {
	return EntityID(uuid.New().String())
}

// Kind identifies which application variant owns the entity
type Kind string

const (
	KindCustomer  Kind = "customer"
	KindSubject   Kind = "subject"
	KindProduct   Kind = "product"
	KindKnowledge Kind = "knowledge"
)

// Validate checks if the kind is valid
func (k Kind) Validate() error {
	switch k {
	case KindCustomer, KindSubject, KindProduct, KindKnowledge:
		return nil
	default:
		return goerr.New("invalid entity kind", goerr.V("kind", k))
	}
}

// Tag returns the display ID segment for the kind
func (k Kind) Tag() string {
	switch k {
	case KindCustomer:
		return "CRM"
	case KindSubject:
		return "LOG"
	case KindProduct:
		return "PRD"
	case KindKnowledge:
		return "KB"
	default:
		return "UNK"
	}
}

// DisplayIDPrefix is the leading segment of every display ID.
const DisplayIDPrefix = "LC"

// FormatDisplayID builds a human-readable ID such as LC-2026-CRM-0001.
// Sequence numbers are scoped by (year, kind) and are never reused.
func FormatDisplayID(kind Kind, year, seq int) string {
	return fmt.Sprintf("%s-%04d-%s-%04d", DisplayIDPrefix, year, kind.Tag(), seq)
}

// CounterKey identifies the display ID counter for a (year, kind) pair.
func CounterKey(kind Kind, year int) string {
	return fmt.Sprintf("%s-%04d-%s", DisplayIDPrefix, year, kind.Tag())
}

// Entity is a business object (customer, subject, product, knowledge
// item) that owns exactly one interaction log.
type Entity struct {
	ID        EntityID
	DisplayID string
	Name      string
	Kind      Kind
	CreatedAt time.Time
}
