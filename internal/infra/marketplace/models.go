package marketplace

import "time"

// Wire shapes of the marketplace API. Field names follow its camelCase JSON.

type envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
}

type errorBody struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

type Page[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// Tokens are the credentials attached to authenticated calls.
type Tokens struct {
	Access  string
	Refresh string
}

type AuthResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Token        string `json:"token"`
}

// Access returns the access token, accepting the older single-token shape.
func (r AuthResult) Access() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.Token
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	City        string `json:"city"`
	Country     string `json:"country"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty"`
	Password    string `json:"password"`
	Token       string `json:"token,omitempty"`
	Role        string `json:"role"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Token           string `json:"token"`
}

type ResendVerificationRequest struct {
	Email string `json:"email"`
}

type Attachment struct {
	ID           int64  `json:"id"`
	Filename     string `json:"filename"`
	Group        string `json:"group"`
	OriginalName string `json:"originalName"`
	Path         string `json:"path"`
	Size         int64  `json:"size"`
}

type Service struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	UserID      int64   `json:"userId"`
	CategoryID  *int64  `json:"categoryId,omitempty"`
}

type User struct {
	ID          int64       `json:"id"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email"`
	Status      string      `json:"status"`
	Role        string      `json:"role"`
	PhoneNumber string      `json:"phoneNumber"`
	Description string      `json:"description"`
	Country     string      `json:"country"`
	City        string      `json:"city"`
	Address     string      `json:"address"`
	BusinessID  *int64      `json:"businessId,omitempty"`
	Services    []Service   `json:"services,omitempty"`
	Avatar      *Attachment `json:"avatar,omitempty"`
}

type Reservation struct {
	ID        int64     `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
	Service   Service   `json:"service"`
	Business  User      `json:"business"`
	Customer  User      `json:"customer"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateReservationRequest struct {
	ServiceID int64     `json:"serviceId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

type UpdateReservationRequest struct {
	Status    string     `json:"status,omitempty"`
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
}

type CompanySearch struct {
	Text    string
	City    string
	Country string
	Limit   int
	Offset  int
}

type Country struct {
	ISO       string `json:"ISO"`
	ISO3      string `json:"ISO3"`
	Country   string `json:"country"`
	Capital   string `json:"capital"`
	Continent string `json:"Continent"`
	Phone     string `json:"Phone"`
	GeonameID string `json:"geonameid"`
}

type City struct {
	GeonameID   string `json:"geonameid"`
	Name        string `json:"name"`
	ASCIIName   string `json:"asciiname"`
	CountryCode string `json:"country_code"`
	Timezone    string `json:"timezone"`
	Population  string `json:"population"`
}
