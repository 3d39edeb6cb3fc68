package service

import (
	"context"
	"errors"
	"time"

	"github.com/smicho01/todos-rest-api/internal/todos/domain"
	"github.com/smicho01/todos-rest-api/internal/todos/store"
	"github.com/smicho01/todos-rest-api/pkg/cryptox"
	"github.com/smicho01/todos-rest-api/pkg/idx"
)

// UserService owns user records and credentials: registration, credential
// verification, directory lookup and admin maintenance.
type UserService struct {
	Store store.Store
	Audit *AuditService
}

// Register creates a new user. Username and email must be unique across all
// users; the check runs as a single combined lookup and is backed by UNIQUE
// constraints in storage, so a concurrent duplicate registration loses at
// the insert instead of slipping through.
func (s *UserService) Register(ctx context.Context, username, email, password string, roles []string) (domain.User, error) {
	if err := domain.ValidateUsername(username); err != nil {
		return domain.User{}, err
	}
	if err := domain.ValidateEmail(email); err != nil {
		return domain.User{}, err
	}
	if err := domain.ValidatePassword(password); err != nil {
		return domain.User{}, err
	}

	roleSet := domain.DefaultRoles()
	if len(roles) > 0 {
		parsed, err := domain.ParseRoles(roles)
		if err != nil {
			return domain.User{}, err
		}
		roleSet = parsed
	}

	if existing, err := s.Store.Users().GetUserByUsernameOrEmail(ctx, username, email); err == nil {
		return domain.User{}, s.takenError(existing, username)
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Roles:        roleSet,
		Active:       true,
		Penalties:    0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost the race against a concurrent registration; report which
			// field collided.
			if existing, lookupErr := s.Store.Users().GetUserByUsernameOrEmail(ctx, username, email); lookupErr == nil {
				return domain.User{}, s.takenError(existing, username)
			}
			return domain.User{}, ErrAccountTaken
		}
		return domain.User{}, err
	}

	s.Audit.Record(ctx, "user registered: "+u.Username)
	return u, nil
}

func (s *UserService) takenError(existing domain.User, username string) error {
	if existing.Username == username {
		return ErrUsernameTaken
	}
	return ErrEmailTaken
}

// VerifyCredentials checks an email/password pair against the stored hash.
func (s *UserService) VerifyCredentials(ctx context.Context, email, password string) (domain.User, error) {
	s.Audit.Record(ctx, "login attempt for: "+email)

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserUnknown
		}
		return domain.User{}, err
	}

	if !u.Active {
		return domain.User{}, ErrAccountInactive
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	return u, nil
}

// FindPublicProfile looks a user up by username and/or email and returns the
// redacted directory view.
func (s *UserService) FindPublicProfile(ctx context.Context, username, email string) (domain.PublicUser, error) {
	u, err := s.Store.Users().GetUserByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return domain.PublicUser{}, err
	}
	return u.Redact(), nil
}

// GetUser fetches a user by id. Ownership is enforced by the caller via the
// guard; this only loads the record.
func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

// ListUsers returns the redacted view of every user in creation order.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PublicUser, len(users))
	for i, u := range users {
		out[i] = u.Redact()
	}
	return out, nil
}

// AdminPatch merges the set fields of patch onto an existing user. Each
// field is validated before the merge; the handler has already rejected
// unknown fields at decode time.
func (s *UserService) AdminPatch(ctx context.Context, userID string, patch domain.UserPatch) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if patch.Username != nil {
		if err := domain.ValidateUsername(*patch.Username); err != nil {
			return domain.User{}, err
		}
		u.Username = *patch.Username
	}
	if patch.Email != nil {
		if err := domain.ValidateEmail(*patch.Email); err != nil {
			return domain.User{}, err
		}
		u.Email = *patch.Email
	}
	if patch.Password != nil {
		if err := domain.ValidatePassword(*patch.Password); err != nil {
			return domain.User{}, err
		}
		hash, err := cryptox.HashPassword(*patch.Password)
		if err != nil {
			return domain.User{}, err
		}
		u.PasswordHash = hash
	}
	if patch.Roles != nil {
		roles, err := domain.ParseRoles(patch.Roles)
		if err != nil {
			return domain.User{}, err
		}
		u.Roles = roles
	}
	if patch.Active != nil {
		u.Active = *patch.Active
	}
	if patch.Penalties != nil {
		if err := domain.ValidatePenalties(*patch.Penalties); err != nil {
			return domain.User{}, err
		}
		u.Penalties = *patch.Penalties
	}

	u.UpdatedAt = time.Now().UTC()
	if err := s.Store.Users().UpdateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrAccountTaken
		}
		return domain.User{}, err
	}

	s.Audit.Record(ctx, "user patched: "+u.ID)
	return u, nil
}

// DeleteUser removes a user together with their categories and todos in one
// transaction. Admin-only by route policy; the cascade is deliberate so a
// deleted account leaves no orphaned records behind.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByID(ctx, userID); err != nil {
			return err
		}
		if err := tx.Todos().DeleteTodosByOwner(ctx, userID); err != nil {
			return err
		}
		if err := tx.Categories().DeleteCategoriesByOwner(ctx, userID); err != nil {
			return err
		}
		return tx.Users().DeleteUser(ctx, userID)
	})
	if err != nil {
		return err
	}

	s.Audit.Record(ctx, "user deleted: "+userID)
	return nil
}
