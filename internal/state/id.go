package state

import (
	"github.com/google/uuid"
)

// ID identifies a point for its whole lifetime, independent of its position
// in the sequence.
type ID uuid.UUID

// NoID is the zero ID. It never names a point.
var NoID ID

// NewID returns a fresh random ID.
func NewID() ID {
	return ID(uuid.New())
}

// ParseID reads an ID written by ID.String.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return NoID, err
	}
	return ID(u), nil
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether id is NoID.
func (id ID) IsZero() bool {
	return id == NoID
}
