package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New generates a time-ordered UUIDv7 suitable for primary keys. Records
// created later sort after earlier ones, which keeps list order stable.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to a random UUIDv4 if the entropy source fails
		return googleuuid.New().String()
	}
	return id.String()
}

// Parse validates and normalizes a UUID string
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
