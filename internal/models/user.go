package models

import (
	"strconv"
	"strings"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	MinimumSignupAge = 18
)

// User is the profile returned by the auth API and kept in the session.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Age         int    `json:"age,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	CNIC        string `json:"cnic,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) IsUser() bool {
	return u != nil && u.Role == RoleUser
}

// Credentials is the login form.
type Credentials struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

func (c *Credentials) Prepare() {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
}

// SignupData is the registration form forwarded to the auth API.
type SignupData struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Age         string `form:"age" json:"age" binding:"required"`
	Email       string `form:"email" json:"email" binding:"required,email"`
	Phone       string `form:"phone" json:"phone"`
	Password    string `form:"password" json:"password" binding:"required,min=6"`
	Address     string `form:"address" json:"address"`
	City        string `form:"city" json:"city"`
	Country     string `form:"country" json:"country"`
	PostalCode  string `form:"postalCode" json:"postalCode"`
	Nationality string `form:"nationality" json:"nationality"`
	CNIC        string `form:"cnic" json:"cnic"`
}

// Prepare normalizes the form. Names are sent as typed; pages escape on render.
func (s *SignupData) Prepare() {
	s.Name = strings.TrimSpace(s.Name)
	s.Age = strings.TrimSpace(s.Age)
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
}

// OfAge reports whether Age is a whole number of at least MinimumSignupAge.
func (s SignupData) OfAge() bool {
	n, err := strconv.Atoi(strings.TrimSpace(s.Age))
	return err == nil && n >= MinimumSignupAge
}

// AuthResult is the body of a successful login or registration.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
