package record

import "github.com/google/uuid"

// NewKey generates a UUID v7 record key.
func NewKey() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
