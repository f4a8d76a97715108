package utils

import "github.com/google/uuid"

// RunIDGenerator produces identifiers for dispatch runs. Version 7 UUIDs
// are time-ordered, so log records of consecutive runs sort naturally.
type RunIDGenerator struct {
}

func NewRunIDGenerator() *RunIDGenerator {
	return &RunIDGenerator{}
}

// Generate returns a new UUIDv7 string, falling back to a random v4 when the
// v7 generator fails.
func (g *RunIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
