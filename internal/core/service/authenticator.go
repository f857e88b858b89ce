package service

import (
	"crypto/subtle"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/ports"
)

// Authenticator matches credentials against a single directory partition.
type Authenticator struct {
	directory ports.Directory
}

func NewAuthenticator(directory ports.Directory) *Authenticator {
	return &Authenticator{directory: directory}
}

// Authenticate selects the candidate list strictly by role — a member
// credential never matches in the bearer partition and vice versa — and
// returns the first record, in list order, whose login identifier and
// password both match exactly. Passwords are stored and compared as plain
// text, case-sensitively; that is the directory's contract, not an oversight
// this layer may paper over with hashing or normalisation.
func (a *Authenticator) Authenticate(identifier, password string, role domain.Role) (*domain.User, error) {
	if identifier == "" || password == "" || !role.Valid() {
		return nil, domain.ErrInvalidCredentials
	}

	for _, u := range a.directory.ByRole(role) {
		if u.Identifier() != identifier {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) == 1 {
			match := u
			return &match, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}
