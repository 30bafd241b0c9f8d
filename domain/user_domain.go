package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetMe          = "user profile retrieved successfully"
	MessageSuccessUpdateUser     = "user profile updated successfully"
	MessageSuccessForgotPassword = "password reset email sent"
	MessageSuccessResetPassword  = "password reset successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetMe          = "failed to retrieve user profile"
	MessageFailedUpdateUser     = "failed to update user profile"
	MessageFailedForgotPassword = "failed to send password reset email"
	MessageFailedResetPassword  = "failed to reset password"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrRoleNotAllowed     = errors.New("role must be donor or receiver")
)

type (
	RegisterRequest struct {
		Email        string `json:"email" validate:"required,email"`
		Password     string `json:"password" validate:"required,min=8"`
		Name         string `json:"name" validate:"required"`
		Role         string `json:"role" validate:"required,oneof=donor receiver"`
		Phone        string `json:"phone" validate:"omitempty"`
		Organization string `json:"organization" validate:"omitempty"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
		Role  string `json:"role"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateUserRequest struct {
		Name         string                `json:"name" form:"name" validate:"omitempty"`
		Phone        string                `json:"phone" form:"phone" validate:"omitempty"`
		Organization string                `json:"organization" form:"organization" validate:"omitempty"`
		Avatar       *multipart.FileHeader `json:"avatar" form:"avatar"`
	}

	UserResponse struct {
		ID           string    `json:"id"`
		Email        string    `json:"email"`
		Name         string    `json:"name"`
		Role         string    `json:"role"`
		Phone        string    `json:"phone,omitempty"`
		Organization string    `json:"organization,omitempty"`
		AvatarURL    string    `json:"avatar_url,omitempty"`
		IsVerified   bool      `json:"is_verified"`
		IsFlagged    bool      `json:"is_flagged"`
		CreatedAt    time.Time `json:"created_at"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}
)
