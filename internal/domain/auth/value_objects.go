package auth

import (
	"errors"
	"strings"

	"booking-gateway/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingResetToken  = errors.New("reset token is required")
	ErrMissingLocation    = errors.New("country and city are required")
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Registration is a sign-up request. Invitation tokens let a user register without an email.
type Registration struct {
	FirstName   user.Name
	LastName    user.Name
	Email       *user.Email
	Password    user.Password
	Role        user.Role
	Country     string
	City        string
	PhoneNumber string
	Address     string
	Description string
	Token       string
}

type RegistrationParams struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	Role        string
	Country     string
	City        string
	PhoneNumber string
	Address     string
	Description string
	Token       string
}

func NewRegistration(p RegistrationParams) (Registration, error) {
	first, err := user.NewName(p.FirstName)
	if err != nil {
		return Registration{}, err
	}
	last, err := user.NewName(p.LastName)
	if err != nil {
		return Registration{}, err
	}
	password, err := user.NewPassword(p.Password)
	if err != nil {
		return Registration{}, err
	}
	role, err := user.NewRole(p.Role)
	if err != nil {
		return Registration{}, err
	}

	country, city := strings.TrimSpace(p.Country), strings.TrimSpace(p.City)
	if country == "" || city == "" {
		return Registration{}, ErrMissingLocation
	}

	var email *user.Email
	if strings.TrimSpace(p.Email) != "" || p.Token == "" {
		e, err := user.NewEmail(p.Email)
		if err != nil {
			return Registration{}, err
		}
		email = &e
	}

	return Registration{
		FirstName:   first,
		LastName:    last,
		Email:       email,
		Password:    password,
		Role:        role,
		Country:     country,
		City:        city,
		PhoneNumber: strings.TrimSpace(p.PhoneNumber),
		Address:     strings.TrimSpace(p.Address),
		Description: p.Description,
		Token:       p.Token,
	}, nil
}

type PasswordReset struct {
	Password user.Password
	Token    string
}

func NewPasswordReset(password, confirmation, token string) (PasswordReset, error) {
	if strings.TrimSpace(token) == "" {
		return PasswordReset{}, ErrMissingResetToken
	}
	p, err := user.NewConfirmedPassword(password, confirmation)
	if err != nil {
		return PasswordReset{}, err
	}
	return PasswordReset{Password: p, Token: token}, nil
}
