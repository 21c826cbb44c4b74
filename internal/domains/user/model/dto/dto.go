package dto

import (
	"hotel/internal/domains/user/model"
)

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// ToModel expects the password already hashed.
func (c *CreateUserRequest) ToModel(hashedPassword string) model.User {
	return model.User{
		Username: c.Username,
		Password: hashedPassword,
	}
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func (u *UserResponse) FromModel(model model.User) {
	u.ID = model.ID
	u.Username = model.Username
}
