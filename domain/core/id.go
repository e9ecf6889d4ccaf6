package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	// StudentID is the external student identifier carried by every source
	// spreadsheet ("Student ID" / "UPM" column). It is not system-generated.
	StudentID string
	// SnapshotID identifies one analyzed snapshot of a student in time.
	SnapshotID ID
	// BatchID identifies one upload/analysis batch across students.
	BatchID ID
	// FactorKey is the canonical snake_case key of a scored item
	// (attitudinal factor, cognitive domain, or academic subject).
	FactorKey string
)

// String conversions for domain IDs
func (id StudentID) String() string  { return string(id) }
func (id SnapshotID) String() string { return ID(id).String() }
func (id BatchID) String() string    { return ID(id).String() }
func (k FactorKey) String() string   { return string(k) }

// ParseStudentID parses a string into StudentID
func ParseStudentID(s string) (StudentID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("student ID cannot be empty")
	}
	return StudentID(strings.TrimSpace(s)), nil
}

// ParseSnapshotID parses a string into SnapshotID
func ParseSnapshotID(s string) (SnapshotID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("snapshot ID cannot be empty")
	}
	return SnapshotID(s), nil
}
