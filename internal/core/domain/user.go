package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User models a registered account. PasswordHash and Role never appear in
// response payloads; handlers expose users through Profile only.
type User struct {
	ID           string
	UserName     string
	Email        string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserProfile is the public projection of a User.
type UserProfile struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}

// Profile strips the credential and role fields.
func (u *User) Profile() UserProfile {
	return UserProfile{ID: u.ID, UserName: u.UserName, Email: u.Email}
}

// UserPatch carries a partial update. Nil fields are left untouched.
type UserPatch struct {
	UserName     *string
	Email        *string
	PasswordHash *string
}
