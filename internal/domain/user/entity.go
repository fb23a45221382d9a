package user

import (
	"time"
)

type User struct {
	ID        int64
	EmailID   string
	MobileNo  string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Profile struct {
	ID                  int64
	UserID              int64
	FirstName           string
	MiddleName          *string
	LastName            string
	DOB                 *time.Time
	ProfileURL          *string
	Gender              string
	StateID             *int64
	DistrictID          *int64
	TahsilID            *int64
	AddressLine         *string
	About               *string
	ProfessionID        *int64
	BusinessDescription *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// WithProfile is a user joined to its optional profile and the names of the
// location and profession rows the profile points at. Every profile-derived
// field is nil for a user without a profile.
type WithProfile struct {
	User

	FirstName           *string
	MiddleName          *string
	LastName            *string
	DOB                 *time.Time
	ProfileURL          *string
	Gender              *string
	StateID             *int64
	DistrictID          *int64
	TahsilID            *int64
	AddressLine         *string
	About               *string
	ProfessionID        *int64
	BusinessDescription *string

	StateName      *string
	DistName       *string
	TahsilName     *string
	ProfessionType *string
}

// Summary is the reduced user shape returned by location filters.
type Summary struct {
	ID         int64
	EmailID    string
	MobileNo   string
	Role       string
	CreatedAt  time.Time
	FirstName  *string
	MiddleName *string
	LastName   *string
	ProfileURL *string
	Gender     *string
	StateName  *string
	DistName   *string
	TahsilName *string
}
