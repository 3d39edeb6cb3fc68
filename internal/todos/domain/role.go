package domain

import "fmt"

// Role is a closed enum of role tags. The policy model supports exactly two
// roles: every account carries "user"; "admin" overrides ownership checks
// and unlocks account administration.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string { return string(r) }

// ParseRole validates a raw role tag against the closed enum.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", &ValidationError{Message: fmt.Sprintf("unknown role: %q", s)}
	}
}

// RoleSet is the set of role tags carried by a user.
type RoleSet []Role

// DefaultRoles is what every registration gets unless explicit roles are supplied.
func DefaultRoles() RoleSet { return RoleSet{RoleUser} }

// ParseRoles validates raw tags into a RoleSet, deduplicating along the way.
// An empty input is invalid: users always carry at least one role.
func ParseRoles(raw []string) (RoleSet, error) {
	if len(raw) == 0 {
		return nil, &ValidationError{Message: "roles must not be empty"}
	}

	seen := make(map[Role]struct{}, len(raw))
	out := make(RoleSet, 0, len(raw))
	for _, s := range raw {
		r, err := ParseRole(s)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out, nil
}

// Has reports whether the set contains the given role.
func (s RoleSet) Has(role Role) bool {
	for _, r := range s {
		if r == role {
			return true
		}
	}
	return false
}

// Strings returns the raw tags, for token claims and storage.
func (s RoleSet) Strings() []string {
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = string(r)
	}
	return out
}
