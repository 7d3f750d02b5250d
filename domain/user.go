package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "login success"
	MessageSuccessGetProfile    = "profile retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"
	MessageSuccessVerifyEmail   = "email verified successfully"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedGetProfile    = "failed to retrieve profile"
	MessageFailedUpdateProfile = "failed to update profile"
	MessageFailedVerifyEmail   = "failed to verify email"

	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrCredentialsInvalid  = errors.New("invalid email or password")
	ErrPasswordNotMatch    = errors.New("password does not match")
	ErrEmailNotVerified    = errors.New("email not verified")
	ErrHashPasswordFailed  = errors.New("failed to hash password")
	ErrVerifyTokenInvalid  = errors.New("verification token invalid")
	ErrVerifyTokenMismatch = errors.New("verification token does not match user")
)

type (
	UserRegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	UserRegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Token string `json:"token"`
	}

	UserLoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UserLoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UserUpdateRequest struct {
		Name               string  `json:"name" validate:"omitempty"`
		DailyCalorieTarget float64 `json:"daily_calorie_target" validate:"omitempty,gt=0"`
	}

	UserProfileResponse struct {
		ID                 string    `json:"id"`
		Name               string    `json:"name"`
		Email              string    `json:"email"`
		IsVerified         bool      `json:"is_verified"`
		IsPremium          bool      `json:"is_premium"`
		DailyCalorieTarget float64   `json:"daily_calorie_target"`
		CreatedAt          time.Time `json:"created_at"`
	}
)
