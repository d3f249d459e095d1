package domain

import "time"

// Cat is a user-owned record carrying a geographic location. Owner is the id
// of the user who created it; OwnerProfile is populated on reads by joining
// the owner's public profile.
type Cat struct {
	ID           string
	CatName      string
	Weight       float64
	Filename     string
	Birthdate    time.Time
	Location     Point
	Owner        string
	OwnerProfile *UserProfile
}

// CatPatch carries a partial update. Nil fields are left untouched.
// Owner may only be set through the admin transfer operation.
type CatPatch struct {
	CatName   *string
	Weight    *float64
	Birthdate *time.Time
	Owner     *string
}
