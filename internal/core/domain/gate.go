package domain

// GateState is the resolved admin-gate state for a caller. The gate starts
// at GateChecking and settles on one of the other states; it fails closed,
// so any identity or role-check error resolves to the most restrictive
// reachable state.
type GateState string

const (
	GateChecking        GateState = "checking"
	GateUnauthenticated GateState = "unauthenticated"
	GateNonAdmin        GateState = "authenticated-non-admin"
	GateAdminLocked     GateState = "authenticated-admin-locked"
	GateAdminUnlocked   GateState = "authenticated-admin-unlocked"
)

// IsAdmin reports whether the state reflects a successful server role check.
// The local unlock flag alone can never make this true.
func (s GateState) IsAdmin() bool {
	return s == GateAdminLocked || s == GateAdminUnlocked
}
