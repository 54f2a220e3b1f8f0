package entity

import "time"

const (
	RoleUser  = "user"
	RoleStaff = "staff"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Profile *Profile `json:"profile,omitempty"`
}

// Role maps the staff flag onto the token role claim.
func (u *User) Role() string {
	if u.IsStaff {
		return RoleStaff
	}
	return RoleUser
}

type Profile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Bio       string    `json:"bio"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// UserFilter narrows user listing; all fields optional, matched as
// case-insensitive substrings.
type UserFilter struct {
	Email     string
	FirstName string
	LastName  string
	City      string
	Country   string
}
