package domain

// UserRole is the server-assigned role of an identity.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
	RoleGuest UserRole = "guest"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}

// UserProfile is the display profile attached to an identity. It is created
// on first save; a nil *UserProfile means the identity has none yet.
type UserProfile struct {
	Name string `json:"name"`
}

// Identity is the authenticated caller as established by the external
// identity provider. Principal is the provider's stable subject identifier.
type Identity struct {
	Principal string
}

// IsAnonymous reports whether no identity session exists.
func (i Identity) IsAnonymous() bool {
	return i.Principal == ""
}
