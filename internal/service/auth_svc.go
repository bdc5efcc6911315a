package service

import (
	"errors"

	"github.com/Palenzo/Backend-HCI-VeRf/internal/model"
)

// ErrInvalidCredentials is returned when no user matches the supplied
// username/password pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

// DefaultUsers is the fixed participant list for the validation study.
// Credentials are deliberately plaintext: the study runs on a closed network
// and the accounts gate nothing beyond attribution of answers.
var DefaultUsers = []model.User{
	{ID: 1, Username: "user1", Password: "password1", Name: "User One"},
	{ID: 2, Username: "user2", Password: "password2", Name: "User Two"},
	{ID: 3, Username: "user3", Password: "password3", Name: "User Three"},
	{ID: 4, Username: "user4", Password: "password4", Name: "User Four"},
}

// AuthService checks credentials against the immutable in-process user list.
type AuthService struct {
	users []model.User
}

func NewAuthService(users []model.User) *AuthService {
	return &AuthService{users: users}
}

// Login returns the password-free view of the matching user, or
// ErrInvalidCredentials. Comparison is exact and case-sensitive on both
// fields.
func (s *AuthService) Login(username, password string) (model.PublicUser, error) {
	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return u.Public(), nil
		}
	}
	return model.PublicUser{}, ErrInvalidCredentials
}
