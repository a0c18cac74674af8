package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type tokenIssuer interface {
	GenerateToken(username, role string) (string, error)
}

// Service checks login attempts against the single configured admin identity
// and issues bearer tokens. There are no user accounts; the board shares one
// admin login configured through the environment.
type Service struct {
	adminUsername     string
	adminPasswordHash string
	jwt               tokenIssuer
	ttl               time.Duration
}

func NewService(adminUsername, adminPasswordHash string, jwt tokenIssuer, ttl time.Duration) *Service {
	return &Service{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		jwt:               jwt,
		ttl:               ttl,
	}
}

// Login never reveals whether the username or the password was wrong.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Username != s.adminUsername {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(req.Username, "admin")
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:     token,
		Username:  req.Username,
		ExpiresIn: formatTTL(s.ttl),
	}, nil
}

func formatTTL(d time.Duration) string {
	if d > 0 && d%time.Hour == 0 {
		return fmt.Sprintf("%dh", int(d/time.Hour))
	}
	return d.String()
}
