package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister         = "user registered successfully"
	MessageSuccessLogin            = "login success"
	MessageSuccessGetMe            = "success get current user"
	MessageSuccessUpdateProfile    = "profile updated successfully"
	MessageSuccessSendVerifyEmail  = "verification email sent"
	MessageSuccessVerifyEmail      = "email verified successfully"
	MessageSuccessForgotPassword   = "password reset email sent"
	MessageSuccessResetPassword    = "password reset successfully"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedGetMe           = "failed to get current user"
	MessageFailedUpdateProfile   = "failed to update profile"
	MessageFailedSendVerifyEmail = "failed to send verification email"
	MessageFailedVerifyEmail     = "failed to verify email"
	MessageFailedForgotPassword  = "failed to process password reset"
	MessageFailedResetPassword   = "failed to reset password"

	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrCredentialsInvalid  = errors.New("invalid email or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrNoUserLoggedIn      = errors.New("no user logged in")
)

type (
	RegisterRequest struct {
		Email    string  `json:"email" validate:"required,email"`
		Password string  `json:"password" validate:"required,min=8"`
		Username *string `json:"username" validate:"omitempty,min=3,max=30"`
		FullName *string `json:"full_name" validate:"omitempty,max=100"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	// MeResponse is the server-side shape of the current session: the auth
	// identity plus its resolved profile, which may still be null.
	MeResponse struct {
		ID         string       `json:"id"`
		Email      string       `json:"email"`
		Role       string       `json:"role"`
		IsVerified bool         `json:"is_verified"`
		CreatedAt  time.Time    `json:"created_at"`
		Profile    *ProfileData `json:"profile"`
	}

	ProfileData struct {
		ID        string    `json:"id"`
		CreatedAt time.Time `json:"created_at"`
		Email     string    `json:"email"`
		Username  *string   `json:"username"`
		FullName  *string   `json:"full_name"`
		Bio       *string   `json:"bio"`
	}

	UpdateProfileRequest struct {
		Username *string `json:"username" validate:"omitempty,min=3,max=30"`
		FullName *string `json:"full_name" validate:"omitempty,max=100"`
		Bio      *string `json:"bio" validate:"omitempty,max=500"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}
)
