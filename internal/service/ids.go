package service

import (
	"time"

	"github.com/google/uuid"
)

func newID() string {
	return uuid.NewString()
}

// canonicalID returns id in the form it is stored under. Strings that are not
// UUIDs cannot reference a record.
func canonicalID(id string) (string, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

func now() time.Time {
	return time.Now().UTC()
}
