package service

import (
	"errors"
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"
)

var (
	emailPattern  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	mobilePattern = regexp.MustCompile(`^(\+?\d{1,4}[\s-]?)?(\(?\d{2,4}\)?[\s-]?)?[\d\s-]{5,15}$`)
)

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	UserName     string `json:"userName"`
	Password     string `json:"password"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Language     string `json:"language"`
	Culture      string `json:"culture"`
}

func (r *CreateUserRequest) Validate() error {
	if err := validateUserName(r.UserName); err != nil {
		return err
	}
	if err := validatePassword(r.Password); err != nil {
		return err
	}
	return validateProfile(r.FirstName, r.LastName, r.Email, r.MobileNumber, r.Language, r.Culture)
}

// UpdateUserRequest is the profile-update payload. It still carries userName
// so a request claiming another user's name can be rejected, but the field is
// never applied: usernames are immutable.
type UpdateUserRequest struct {
	UserName     string `json:"userName"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Language     string `json:"language"`
	Culture      string `json:"culture"`
}

func (r *UpdateUserRequest) Validate() error {
	if err := validateUserName(r.UserName); err != nil {
		return err
	}
	return validateProfile(r.FirstName, r.LastName, r.Email, r.MobileNumber, r.Language, r.Culture)
}

// UserLoginRequest is the authentication payload. The password policy is
// deliberately not enforced here: tightening the policy must not lock out
// accounts created under an older one.
type UserLoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

func (r *UserLoginRequest) Validate() error {
	if r.UserName == "" {
		return errors.New("Username is required.")
	}
	if r.Password == "" {
		return errors.New("Password is required.")
	}
	return nil
}

func validateUserName(userName string) error {
	if userName == "" {
		return errors.New("Username is required.")
	}
	if n := utf8.RuneCountInString(userName); n < 3 || n > 30 {
		return errors.New("Username must be between 3 and 30 characters.")
	}
	return nil
}

func validatePassword(password string) error {
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if utf8.RuneCountInString(password) < 8 || !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return errors.New("Password must be at least 8 characters long and contain an uppercase letter, lowercase letter, number, and special character.")
	}
	return nil
}

func validateProfile(firstName, lastName, email, mobileNumber, language, culture string) error {
	if err := validateName("First name", firstName); err != nil {
		return err
	}
	if err := validateName("Last name", lastName); err != nil {
		return err
	}
	if email == "" {
		return errors.New("Email is required.")
	}
	if n := utf8.RuneCountInString(email); n < 2 || n > 50 {
		return errors.New("Email must be between 2 and 50 characters.")
	}
	if !emailPattern.MatchString(email) {
		return errors.New("The email address format is invalid.")
	}
	if mobileNumber != "" && !mobilePattern.MatchString(mobileNumber) {
		return errors.New("The mobile number format is invalid.")
	}
	if language == "" {
		return errors.New("Language is required.")
	}
	if utf8.RuneCountInString(language) > 3 {
		return errors.New("Language must not exceed 3 characters.")
	}
	if culture == "" {
		return errors.New("Culture is required.")
	}
	if utf8.RuneCountInString(culture) > 10 {
		return errors.New("Culture must not exceed 10 characters.")
	}
	return nil
}

func validateName(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required.", field)
	}
	if n := utf8.RuneCountInString(value); n < 2 || n > 30 {
		return fmt.Errorf("%s must be between 2 and 30 characters.", field)
	}
	return nil
}
