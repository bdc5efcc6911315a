package model

// User is a fixed validation-study participant. The user list is defined at
// process start and never persisted; the password is compared in plaintext and
// must never appear in a response.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
}

// PublicUser is the password-free view of a User returned by login.
type PublicUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Public strips the credential fields from a User.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Name: u.Name}
}

// LoginRequest is the API request body for POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the API response for a successful login. The client keeps
// the returned user id and passes it explicitly on later requests.
type LoginResponse struct {
	Success bool       `json:"success"`
	User    PublicUser `json:"user"`
}
