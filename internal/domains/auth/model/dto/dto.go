package dto

import (
	userModel "hotel/internal/domains/user/model"
	"hotel/shared/constant"
)

type CreateUserRequest struct {
	Name     string `validate:"required,max=50"`
	Password string `validate:"required,max=64"`
}

// ToUserModel builds the row to insert. Accounts created here are always
// customers; managers are provisioned directly in the store.
func (r *CreateUserRequest) ToUserModel(storedPassword string) userModel.User {
	return userModel.User{
		Name:     r.Name,
		Password: storedPassword,
		UserType: constant.RoleCustomer,
	}
}

type LogInRequest struct {
	UserID   string `validate:"required,numeric"`
	Password string `validate:"required"`
}

type CreateUserResponse struct {
	UserID int
}
