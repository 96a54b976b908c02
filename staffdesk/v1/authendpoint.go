package v1

import (
	"context"
	"encoding/json"
	"errors"
)

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthEndpoint struct {
	transport *Transport
}

// Login exchanges email+password for a bearer token. The server replies with
// either a bare JSON string or {"token": "..."}; both are accepted.
func (ep *AuthEndpoint) Login(ctx context.Context, email, password string) (string, error) {
	data, err := ep.transport.Post(ctx, "/auth/login", &LoginRequestDTO{Email: email, Password: password}, nil)
	if err != nil {
		return "", err
	}

	var bare string
	if err := json.Unmarshal(data, &bare); err == nil && bare != "" {
		return bare, nil
	}

	var wrapped struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return "", err
	}
	if wrapped.Token == "" {
		return "", errors.New("login response missing token")
	}
	return wrapped.Token, nil
}
