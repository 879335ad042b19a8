package models

import "github.com/alex-pricope/simple-survey-system/storage"

type TokenRequest struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type UserCreateRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type UpdateRoleRequest struct {
	ID   string `json:"_id"`
	Role string `json:"role"`
}

type UserResponse struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`
	Role  string `json:"role"`
}

// UserCreateResponse mirrors an insert result: InsertedID is empty when the
// email was already registered.
type UserCreateResponse struct {
	InsertedID string       `json:"insertedId,omitempty"`
	User       UserResponse `json:"user"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

type SurveyorCheckResponse struct {
	Surveyor bool `json:"surveyor"`
}

type ProUserCheckResponse struct {
	ProUser bool `json:"proUser"`
}

func TransformUserFromStorage(u *storage.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Photo: u.Photo,
		Role:  string(u.Role),
	}
}

func TransformUsersFromStorage(users []*storage.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, TransformUserFromStorage(u))
	}
	return out
}
