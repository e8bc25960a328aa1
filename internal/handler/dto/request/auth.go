package request

import (
	"booking-gateway/internal/domain/auth"
	"booking-gateway/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

// RegisterRequest signs up a customer or a business. Invited users register with the
// invitation token and no email.
type RegisterRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required_without=Token,omitempty,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required,userrole"`
	Country     string `json:"country" binding:"required"`
	City        string `json:"city" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Token       string `json:"token"`
}

func (r *RegisterRequest) ToDomain() (auth.Registration, error) {
	return auth.NewRegistration(auth.RegistrationParams{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Password:    r.Password,
		Role:        r.Role,
		Country:     r.Country,
		City:        r.City,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		Description: r.Description,
		Token:       r.Token,
	})
}

// EmailRequest is shared by forgot-password and resend-verification-email.
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (r *EmailRequest) ToDomain() (user.Email, error) {
	return user.NewEmail(r.Email)
}

type ResetPasswordRequest struct {
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	Token           string `json:"token" binding:"required"`
}

func (r *ResetPasswordRequest) ToDomain() (auth.PasswordReset, error) {
	return auth.NewPasswordReset(r.Password, r.ConfirmPassword, r.Token)
}
