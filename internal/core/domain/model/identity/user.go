package identity

import (
	"errors"
	"sync"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// maxFailedAttempts is the number of consecutive failed password
// verifications after which an account deactivates.
const maxFailedAttempts = 5

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through the NewUser factory method.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	// ErrAccountDisabled indicates the account is inactive and all logins
	// are refused until externally reactivated.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrAccountLocked indicates the account just deactivated because the
	// failed-attempt limit was reached.
	ErrAccountLocked = errors.New("account locked after too many failed attempts")
)

// User is the identity aggregate. It owns its credential state: the password
// hash, the consecutive-failure counter, the active flag, and the user's own
// login history (there is no global login log).
//
// Invariants:
//   - Role is immutable after creation and always one of the known values.
//   - After maxFailedAttempts consecutive failed verifications the account
//     deactivates; only Reactivate restores it.
//   - The failure counter resets only on a successful authentication.
//
// All credential operations are serialized by an internal mutex so concurrent
// login attempts cannot race the counter past the lockout threshold.
type User struct {
	id           kernel.UUID
	username     string
	passwordHash string
	role         Role

	mu             sync.Mutex
	isActive       bool
	failedAttempts int
	loginHistory   []time.Time
	lastLogin      *time.Time

	guard guard.ConstructorGuard
}

// NewUser creates a user with a freshly hashed password.
// The role must be one of the four known values and the username non-empty.
func NewUser(id kernel.UUID, username, password string, role Role) (*User, error) {
	user := &User{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		user.setID(id),
		user.setUsername(username),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	user.passwordHash = hash

	return user, nil
}

// Validate ensures the User instance was properly constructed through NewUser.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the login name.
func (u *User) Username() string {
	return u.username
}

// Role returns the user's role. Roles never change after creation.
func (u *User) Role() Role {
	return u.role
}

// IsActive reports whether the account accepts logins.
func (u *User) IsActive() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.isActive
}

// FailedAttempts returns the current consecutive-failure count.
func (u *User) FailedAttempts() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.failedAttempts
}

// LastLogin returns the time of the last successful authentication,
// nil if the user has never logged in.
func (u *User) LastLogin() *time.Time {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.lastLogin == nil {
		return nil
	}
	t := *u.lastLogin
	return &t
}

// LoginHistory returns a copy of the user's successful login timestamps.
func (u *User) LoginHistory() []time.Time {
	u.mu.Lock()
	defer u.mu.Unlock()
	history := make([]time.Time, len(u.loginHistory))
	copy(history, u.loginHistory)
	return history
}

// Authenticate verifies the password, failing closed.
//
// A disabled account refuses every attempt with ErrAccountDisabled. A wrong
// password increments the consecutive-failure counter and returns
// (false, nil); the attempt that reaches the limit deactivates the account
// and returns ErrAccountLocked. A correct password resets the counter, stamps
// the login time into the user's history, and returns (true, nil).
func (u *User) Authenticate(password string) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.isActive {
		return false, errs.NewUnauthorizedErrorWithCause(u.username, "authenticate", ErrAccountDisabled)
	}

	if verifyPassword(password, u.passwordHash) {
		now := time.Now()
		u.lastLogin = &now
		u.loginHistory = append(u.loginHistory, now)
		u.failedAttempts = 0
		return true, nil
	}

	u.failedAttempts++
	if u.failedAttempts >= maxFailedAttempts {
		u.isActive = false
		return false, errs.NewUnauthorizedErrorWithCause(u.username, "authenticate", ErrAccountLocked)
	}

	return false, nil
}

// Reactivate re-enables a disabled account and clears the failure counter.
// This is the external-intervention path after a lockout.
func (u *User) Reactivate() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.isActive = true
	u.failedAttempts = 0
}

// CanSetStatus reports whether this user's role may apply the given shipment
// status label.
func (u *User) CanSetStatus(statusLabel string) bool {
	return roleMaySetStatus(u.role, statusLabel)
}

// CanCreateShipment reports whether this user may create shipments
// (customer service and admin only).
func (u *User) CanCreateShipment() bool {
	return u.role == RoleCustomerService || u.role == RoleAdmin
}

// CanViewAllShipments reports whether this user may list every shipment in
// the system (admin only).
func (u *User) CanViewAllShipments() bool {
	return u.role == RoleAdmin
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username is required")
	}
	u.username = username
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
