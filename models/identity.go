package models

// Role classifies an authenticated actor.
type Role string

const (
	RoleNGO  Role = "ngo"
	RoleUser Role = "user"
)

// ParseRole maps a stored userType value to a Role. Unknown values map to "".
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleNGO:
		return RoleNGO
	case RoleUser:
		return RoleUser
	}
	return ""
}

// IdentityState enum
type IdentityState string

const (
	// StateUnknown means a token is present but has not been confirmed by the backend yet.
	StateUnknown   IdentityState = "unknown"
	StateAnonymous IdentityState = "anonymous"
	StateNGO       IdentityState = "ngo"
	StateUser      IdentityState = "user"
)

// Identity is the resolved caller: Unknown, Anonymous, NGO(id) or User(id).
type Identity struct {
	State     IdentityState `json:"state"`
	SubjectID string        `json:"id,omitempty"`
}

var (
	Unknown   = Identity{State: StateUnknown}
	Anonymous = Identity{State: StateAnonymous}
)

func NGO(id string) Identity  { return Identity{State: StateNGO, SubjectID: id} }
func User(id string) Identity { return Identity{State: StateUser, SubjectID: id} }

// IdentityFor builds the identity of a resolved role.
func IdentityFor(role Role, id string) Identity {
	switch role {
	case RoleNGO:
		return NGO(id)
	case RoleUser:
		return User(id)
	}
	return Unknown
}

func (i Identity) IsNGO() bool  { return i.State == StateNGO }
func (i Identity) IsUser() bool { return i.State == StateUser }

// Authenticated reports whether the identity was confirmed as an NGO or a user.
func (i Identity) Authenticated() bool { return i.IsNGO() || i.IsUser() }

// Resolved reports whether the identity left the unknown state.
func (i Identity) Resolved() bool { return i.State != StateUnknown && i.State != "" }

// Role returns the role of an authenticated identity, or "".
func (i Identity) Role() Role {
	switch i.State {
	case StateNGO:
		return RoleNGO
	case StateUser:
		return RoleUser
	}
	return ""
}

// Is reports whether the identity holds one of roles.
func (i Identity) Is(roles ...Role) bool {
	r := i.Role()
	if r == "" {
		return false
	}
	for _, want := range roles {
		if r == want {
			return true
		}
	}
	return false
}
