package children

import (
	"errors"
	"strings"
	"time"

	"github.com/twkim02/todoc-chat-ai/pkg"
)

// Gender is the registered child's gender as the app models it.
type Gender string

const (
	GenderBoy  Gender = "boy"
	GenderGirl Gender = "girl"
)

// Child is one registered child.
type Child struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	BirthDate string    `json:"birth_date"` // YYYY-MM-DD
	Gender    Gender    `json:"gender"`
	CreatedAt time.Time `json:"created_at"`
}

// Registration errors. All surface as user-visible messages; the form stays
// editable and nothing is retried automatically.
var (
	ErrNameRequired   = errors.New("child name is required")
	ErrDateRequired   = errors.New("birth date is required")
	ErrDateFormat     = errors.New("birth date must be a valid YYYY-MM-DD date")
	ErrDateInFuture   = errors.New("birth date cannot be in the future")
	ErrGenderRequired = errors.New("gender must be boy or girl")
)

// ValidateRegistration checks a registration form and returns the normalized
// child data. The format check runs before the past-date check; they are not
// interchangeable.
func ValidateRegistration(name, birthDate, gender string) (Child, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Child{}, ErrNameRequired
	}

	birthDate = strings.TrimSpace(birthDate)
	if birthDate == "" {
		return Child{}, ErrDateRequired
	}
	if !pkg.IsValidYYYYMMDD(birthDate) {
		return Child{}, ErrDateFormat
	}
	if !pkg.IsDateInPast(birthDate) {
		return Child{}, ErrDateInFuture
	}

	g := Gender(gender)
	if g != GenderBoy && g != GenderGirl {
		return Child{}, ErrGenderRequired
	}

	return Child{Name: name, BirthDate: birthDate, Gender: g}, nil
}
