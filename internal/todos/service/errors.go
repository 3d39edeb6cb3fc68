package service

import (
	"errors"
	"fmt"
)

var (
	// ErrAccountTaken is the parent of both uniqueness failures so callers
	// can match the family with errors.Is.
	ErrAccountTaken  = errors.New("account_taken")
	ErrUsernameTaken = fmt.Errorf("%w: username", ErrAccountTaken)
	ErrEmailTaken    = fmt.Errorf("%w: email", ErrAccountTaken)

	ErrUserUnknown        = errors.New("user_unknown")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrAccountInactive    = errors.New("account_inactive")

	ErrForbidden = errors.New("forbidden")

	ErrDuplicateCategory = errors.New("duplicate_category")
	ErrCategoryInUse     = errors.New("category_in_use")
	ErrCategoryNotFound  = errors.New("category_not_found")
)
