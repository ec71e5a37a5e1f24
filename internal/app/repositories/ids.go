package repositories

import (
	"fmt"
	"math/rand/v2"

	"github.com/yigit/allizzwell/internal/pkg/apperrors"
)

// Record id prefixes
const (
	CounsellorIDPrefix   = "CNS"
	NotificationIDPrefix = "NTF"
)

const maxIDAttempts = 64

// IDGenerator returns a candidate id for the given prefix
type IDGenerator func(prefix string) string

// RandomID returns prefix followed by four random digits
func RandomID(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, 1000+rand.IntN(9000))
}

// uniqueID draws ids from gen until one is not taken
func uniqueID(gen IDGenerator, prefix string, taken func(string) bool) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := gen(prefix)
		if !taken(id) {
			return id, nil
		}
	}
	return "", apperrors.NewConflictError(fmt.Sprintf("no free %s id after %d attempts", prefix, maxIDAttempts))
}
