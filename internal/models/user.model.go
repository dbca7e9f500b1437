package models

type User struct {
	BaseModel
	Username string `gorm:"type:text;uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:text;not null"             json:"-"`
	Email    string `gorm:"type:text;uniqueIndex;not null" json:"email"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries optional profile changes; nil fields are left
// untouched.
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// UserProfile is the public shape of a user, without the password hash.
type UserProfile struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *User) ToProfile() UserProfile {
	return UserProfile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
