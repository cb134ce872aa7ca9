package models

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login. The token is also set
// in the Authorization response header.
type LoginResponse struct {
	Token     string    `json:"token"`
	Principal Principal `json:"principal"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	// Error is a stable machine readable code (e.g. "account_disabled").
	Error string `json:"error"`
	// Message is a human readable description.
	Message string `json:"message"`
}

// RegistrationResponse is returned by POST /api/products.
type RegistrationResponse struct {
	Product Product `json:"product"`
	// QRPath is the API path of the scannable artifact.
	QRPath string `json:"qr_path"`
}

// ProductList wraps catalog listings.
type ProductList struct {
	Products []Product `json:"products"`
	Length   int       `json:"length"`
}

// PrincipalList wraps principal listings.
type PrincipalList struct {
	Principals []Principal `json:"principals"`
	Length     int         `json:"length"`
}

// InconsistencyList wraps inconsistency listings.
type InconsistencyList struct {
	Inconsistencies []Inconsistency `json:"inconsistencies"`
	Length          int             `json:"length"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
	Ledger  string `json:"ledger,omitempty"`
}
