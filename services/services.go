package services

import (
	"errors"
	"time"

	"github.com/CPU-commits/Intranet_BDirectorio/repositories"
	"go.uber.org/zap"
)

// Services bundles everything the HTTP layer needs; it is built once at
// startup and handed to controllers and middlewares.
type Services struct {
	Usuarios *UsuariosService
	Auth     *AuthService
	Sessions *SessionService
}

type Options struct {
	Repository    repositories.UsuarioRepository
	Credentials   map[string]string
	SessionSecret string
	SessionTTL    time.Duration
	Logger        *zap.Logger
}

func NewServices(opts Options) (*Services, error) {
	if opts.SessionSecret == "" {
		return nil, errors.New("session secret is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	sessions := NewSessionService(NewMemorySessionStore(), opts.SessionSecret, opts.SessionTTL)
	auth, err := NewAuthService(opts.Credentials, sessions, opts.Logger)
	if err != nil {
		return nil, err
	}
	return &Services{
		Usuarios: NewUsuariosService(opts.Repository, opts.Logger),
		Auth:     auth,
		Sessions: sessions,
	}, nil
}
