package dream

import (
	"time"

	"github.com/google/uuid"
)

// Record is immutable once persisted. Dream holds the text exactly as the
// user submitted it; Interpretation is never empty at persist time.
type Record struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Dream          string
	Interpretation string
	CreatedAt      time.Time
}
