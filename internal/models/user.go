package models

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	ShopName     string    `json:"shop_name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserPatch carries a partial account update. Nil fields are left untouched.
type UserPatch struct {
	Name         *string
	ShopName     *string
	PasswordHash *string
}

func (up UserPatch) Apply(u *User) {
	if up.Name != nil {
		u.Name = *up.Name
	}
	if up.ShopName != nil {
		u.ShopName = *up.ShopName
	}
	if up.PasswordHash != nil {
		u.PasswordHash = *up.PasswordHash
	}
}
