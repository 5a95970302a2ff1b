package pkg

import "github.com/google/uuid"

// GenerateMatchID - generates a unique identifier for a match.
func GenerateMatchID() string {
	return uuid.NewString()
}
