package domain

// SessionIdentity is the authenticated identity bound to an opaque
// session token. It is created by the authenticator, stored by the
// session store, and read by the authorization middleware. Destroying a
// session erases the whole record, not just a flag.
type SessionIdentity struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	ReferenceID string `json:"reference_id,omitempty"`
	DisplayName string `json:"display_name"`
}
