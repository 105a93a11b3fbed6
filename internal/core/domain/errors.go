package domain

import "errors"

// Sentinel errors for the auth and registration flows. Handlers map these
// to user-facing messages; anything else is logged and genericized.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountDeactivated is returned for a correct password on a
	// deactivated account. It is not secret-dependent, so it may differ
	// from ErrInvalidCredentials.
	ErrAccountDeactivated = errors.New("account deactivated")

	// ErrUserNotFound is an internal lookup miss. The authenticator
	// converts it to ErrInvalidCredentials before it leaves the core.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailExists means the email is already registered.
	ErrEmailExists = errors.New("email already registered")

	// ErrProfileNotFound marks an orphaned credential: a non-admin user
	// whose ReferenceID resolves to no profile row. This is a
	// data-integrity fault, never silently defaulted.
	ErrProfileNotFound = errors.New("profile not found for credential")

	// ErrSessionNotFound means the token maps to no live session.
	ErrSessionNotFound = errors.New("session not found")
)
