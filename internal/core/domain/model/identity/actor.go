package identity

// AnonymousActorName is the name recorded for events triggered without an
// authenticated user behind them.
const AnonymousActorName = "System"

// Actor is the caller of an engine operation: either an authenticated user
// or the anonymous public-query capability. Modeling the anonymous customer
// as a value instead of a nil *User keeps permission checks total: an
// anonymous actor simply has no permissions.
type Actor struct {
	user *User
}

// UserActor wraps an authenticated user as an actor.
func UserActor(user *User) Actor {
	return Actor{user: user}
}

// PublicActor returns the anonymous actor used for public tracking queries.
func PublicActor() Actor {
	return Actor{}
}

// IsAuthenticated reports whether a real user stands behind this actor.
func (a Actor) IsAuthenticated() bool {
	return a.user != nil
}

// User returns the authenticated user, or nil for the public actor.
func (a Actor) User() *User {
	return a.user
}

// Username returns the actor's name for audit records,
// AnonymousActorName when unauthenticated.
func (a Actor) Username() string {
	if a.user == nil {
		return AnonymousActorName
	}
	return a.user.Username()
}

// CanSetStatus reports whether the actor may apply the given status label.
// The public actor may not apply any.
func (a Actor) CanSetStatus(statusLabel string) bool {
	if a.user == nil {
		return false
	}
	return a.user.CanSetStatus(statusLabel)
}

// CanCreateShipment reports whether the actor may create shipments.
func (a Actor) CanCreateShipment() bool {
	if a.user == nil {
		return false
	}
	return a.user.CanCreateShipment()
}
