package handler

// User-facing messages. These are part of the external contract: the
// credential-failure message is identical for unknown email and wrong
// password, and internal error detail never appears here.
const (
	msgInvalidMethod      = "Invalid request method"
	msgInvalidPayload     = "Invalid request payload"
	msgMissingCredentials = "Email and password are required"
	msgInvalidCredentials = "Invalid email or password"
	msgDeactivated        = "Your account has been deactivated. Please contact support."
	msgLoginOK            = "Login successful!"
	msgLoginFailed        = "Login failed. Please try again."
	msgEmailTaken         = "Email already registered"
	msgRegisterOK         = "Registration successful! Redirecting to login..."
	msgRegisterFailed     = "Registration failed. Please try again."
	msgDashboardFailed    = "Failed to load dashboard. Please try again."
	msgGenericFailure     = "Something went wrong. Please try again."
)

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// registerRequest lists its fields in validation order; the validator
// reports every violated rule, not just the first.
type registerRequest struct {
	FirstName       string `json:"firstName"       form:"firstName"       validate:"required"`
	LastName        string `json:"lastName"        form:"lastName"        validate:"required"`
	Email           string `json:"email"           form:"email"           validate:"required,email"`
	Phone           string `json:"phone"           form:"phone"           validate:"required"`
	Address         string `json:"address"         form:"address"         validate:"required"`
	Password        string `json:"password"        form:"password"        validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"eqfield=Password"`
}

type supplierRequest struct {
	Name            string `json:"name"            form:"name"            validate:"required"`
	Email           string `json:"email"           form:"email"           validate:"required,email"`
	Phone           string `json:"phone"           form:"phone"           validate:"required"`
	Address         string `json:"address"         form:"address"         validate:"required"`
	Password        string `json:"password"        form:"password"        validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"eqfield=Password"`
}

// --- Response types ---

// statusResponse is the envelope for every auth and registration reply.
type statusResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
	Role     string `json:"role,omitempty"`
}

type supplierCreatedResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	SupplierID string `json:"supplier_id"`
}
