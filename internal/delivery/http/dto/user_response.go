package dto

import (
	"time"

	"powar-data/internal/domain/user"
)

const dateLayout = "2006-01-02"

type UserWithProfileResponse struct {
	ID        int64     `json:"id"`
	EmailID   string    `json:"email_id"`
	MobileNo  string    `json:"mobile_no"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FirstName           *string `json:"first_name"`
	MiddleName          *string `json:"middle_name"`
	LastName            *string `json:"last_name"`
	DOB                 *string `json:"dob"`
	ProfileURL          *string `json:"profile_url"`
	Gender              *string `json:"gender"`
	StateID             *int64  `json:"state_id"`
	DistrictID          *int64  `json:"district_id"`
	TahsilID            *int64  `json:"tahsil_id"`
	AddressLine         *string `json:"address_line"`
	About               *string `json:"about"`
	ProfessionID        *int64  `json:"profession_id"`
	BusinessDescription *string `json:"business_description"`

	StateName      *string `json:"state_name"`
	DistName       *string `json:"dist_name"`
	TahsilName     *string `json:"tahsil_name"`
	ProfessionType *string `json:"profession_type"`
}

type UserSummaryResponse struct {
	ID         int64     `json:"id"`
	EmailID    string    `json:"email_id"`
	MobileNo   string    `json:"mobile_no"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	FirstName  *string   `json:"first_name"`
	MiddleName *string   `json:"middle_name"`
	LastName   *string   `json:"last_name"`
	ProfileURL *string   `json:"profile_url"`
	Gender     *string   `json:"gender"`
	StateName  *string   `json:"state_name"`
	DistName   *string   `json:"dist_name"`
	TahsilName *string   `json:"tahsil_name"`
}

func NewUserWithProfile(u user.WithProfile) UserWithProfileResponse {
	var dob *string
	if u.DOB != nil {
		s := u.DOB.Format(dateLayout)
		dob = &s
	}

	return UserWithProfileResponse{
		ID:                  u.ID,
		EmailID:             u.EmailID,
		MobileNo:            u.MobileNo,
		Role:                u.Role,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
		FirstName:           u.FirstName,
		MiddleName:          u.MiddleName,
		LastName:            u.LastName,
		DOB:                 dob,
		ProfileURL:          u.ProfileURL,
		Gender:              u.Gender,
		StateID:             u.StateID,
		DistrictID:          u.DistrictID,
		TahsilID:            u.TahsilID,
		AddressLine:         u.AddressLine,
		About:               u.About,
		ProfessionID:        u.ProfessionID,
		BusinessDescription: u.BusinessDescription,
		StateName:           u.StateName,
		DistName:            u.DistName,
		TahsilName:          u.TahsilName,
		ProfessionType:      u.ProfessionType,
	}
}

func NewUsersWithProfile(items []user.WithProfile) []UserWithProfileResponse {
	out := make([]UserWithProfileResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewUserWithProfile(it))
	}
	return out
}

func NewUserSummaries(items []user.Summary) []UserSummaryResponse {
	out := make([]UserSummaryResponse, 0, len(items))
	for _, it := range items {
		out = append(out, UserSummaryResponse{
			ID:         it.ID,
			EmailID:    it.EmailID,
			MobileNo:   it.MobileNo,
			Role:       it.Role,
			CreatedAt:  it.CreatedAt,
			FirstName:  it.FirstName,
			MiddleName: it.MiddleName,
			LastName:   it.LastName,
			ProfileURL: it.ProfileURL,
			Gender:     it.Gender,
			StateName:  it.StateName,
			DistName:   it.DistName,
			TahsilName: it.TahsilName,
		})
	}
	return out
}
