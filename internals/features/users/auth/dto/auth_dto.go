package dto

import "github.com/google/uuid"

/* =========================================================
   REQUEST
   ========================================================= */

// RegisterRequest creates the login user and the pending member profile
// in one shot, matching the old registration form.
type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`

	MemberCode      int     `json:"member_code" validate:"required,min=1"`
	FirstName       string  `json:"first_name"  validate:"required"`
	LastName        string  `json:"last_name"   validate:"required"`
	Phone           *string `json:"phone" validate:"omitempty,max=30"`
	Job             *string `json:"job"`
	Birthday        *string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Address         *string `json:"address"`
	RelativeContact *string `json:"relative_contact"`
	PriorConditions *string `json:"prior_conditions"`
	CoachingRequired *string `json:"coaching_required" validate:"omitempty,oneof=Yes No"`
	Target          *string `json:"target"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"user_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}
