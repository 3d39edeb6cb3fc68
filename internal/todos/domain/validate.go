package domain

import (
	"fmt"
	"net/mail"
	"unicode/utf8"
)

// ValidationError reports malformed input. Handlers map it to a 400 with the
// message verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalidf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Field limits, matching the registration/login/todo schemas of the API.
const (
	UsernameMin = 3
	UsernameMax = 100
	EmailMin    = 6
	EmailMax    = 256
	PasswordMin = 6
	PasswordMax = 1024

	CategoryNameMin = 3
	CategoryNameMax = 50
	ColorMax        = 30

	TitleMin       = 3
	TitleMax       = 256
	DescriptionMax = 3000
)

func ValidateUsername(s string) error {
	if n := utf8.RuneCountInString(s); n < UsernameMin || n > UsernameMax {
		return invalidf("username must be %d-%d characters", UsernameMin, UsernameMax)
	}
	return nil
}

func ValidateEmail(s string) error {
	if n := utf8.RuneCountInString(s); n < EmailMin || n > EmailMax {
		return invalidf("email must be %d-%d characters", EmailMin, EmailMax)
	}
	if addr, err := mail.ParseAddress(s); err != nil || addr.Address != s {
		return invalidf("email must be a valid address")
	}
	return nil
}

func ValidatePassword(s string) error {
	if n := utf8.RuneCountInString(s); n < PasswordMin || n > PasswordMax {
		return invalidf("password must be %d-%d characters", PasswordMin, PasswordMax)
	}
	return nil
}

func ValidateCategoryName(s string) error {
	if n := utf8.RuneCountInString(s); n < CategoryNameMin || n > CategoryNameMax {
		return invalidf("name must be %d-%d characters", CategoryNameMin, CategoryNameMax)
	}
	return nil
}

func ValidateColor(s string) error {
	if n := utf8.RuneCountInString(s); n == 0 || n > ColorMax {
		return invalidf("color must be 1-%d characters", ColorMax)
	}
	return nil
}

func ValidateTitle(s string) error {
	if n := utf8.RuneCountInString(s); n < TitleMin || n > TitleMax {
		return invalidf("title must be %d-%d characters", TitleMin, TitleMax)
	}
	return nil
}

func ValidateDescription(s string) error {
	if utf8.RuneCountInString(s) > DescriptionMax {
		return invalidf("description must be at most %d characters", DescriptionMax)
	}
	return nil
}

func ValidatePenalties(n int) error {
	if n < 0 {
		return invalidf("penalties must not be negative")
	}
	return nil
}
