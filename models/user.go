package models

// User is the authenticated club account as returned by GET /users/me and the
// login endpoint. One user owns the family roster of [Member] records.
type User struct {
	// ID is the server-assigned account identifier.
	ID int64 `json:"id"`

	// Email is the login identifier of the account.
	Email string `json:"email"`

	// Name is the display name of the account holder.
	Name string `json:"name"`

	// IsAdmin grants access to the /admin/* endpoints.
	IsAdmin bool `json:"is_admin"`
}

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body of POST /users/.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest returns the credentials used to sign in right after signup.
func (s SignupRequest) LoginRequest() LoginRequest {
	return LoginRequest{Email: s.Email, Password: s.Password}
}
