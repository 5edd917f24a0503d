package handlers

import (
	"github.com/ghuser/backoffice/services/user/domain/models"
)

// UserRequest is the request body for POST /api/users and PUT /api/users/{id}.
type UserRequest struct {
	FirstName string `json:"firstName" validate:"required,max=500" example:"Ada"`
	LastName  string `json:"lastName"  validate:"max=500"          example:"Lovelace"`
	Email     string `json:"email"     validate:"required,email"   example:"ada@example.com"`
	Phone     string `json:"phone"     validate:"max=255"          example:"+62-812-0000-0000"`
} // @name UserRequest

// UserResponse is the user projection returned by every user endpoint.
type UserResponse struct {
	ID        int64  `json:"id"        example:"1"`
	FirstName string `json:"firstName" example:"Ada"`
	LastName  string `json:"lastName"  example:"Lovelace"`
	Email     string `json:"email"     example:"ada@example.com"`
	Phone     string `json:"phone"     example:"+62-812-0000-0000"`
} // @name UserResponse

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
	}
}

func toUserResponses(users []*models.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, user := range users {
		out[i] = toUserResponse(user)
	}
	return out
}
