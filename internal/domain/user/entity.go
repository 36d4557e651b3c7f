package user

import (
	"time"

	"github.com/google/uuid"
)

// User is identified externally by phone number; ID is the surrogate key
// assigned on first registration and stable across re-registrations.
type User struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Birthdate string
	CreatedAt time.Time
}
