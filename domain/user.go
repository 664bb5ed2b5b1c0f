package domain

import "strings"

// User is a guest that can hold bookings.
type User struct {
	id   string
	name string
}

func NewUser(id, name string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError("O nome é obrigatório")
	}
	return &User{id: id, name: name}, nil
}

func (u *User) ID() string { return u.id }

func (u *User) Name() string { return u.name }
