package services

import (
	"errors"
	"net/http"
	"strings"

	"github.com/CPU-commits/Intranet_BDirectorio/forms"
	"github.com/CPU-commits/Intranet_BDirectorio/models"
	"github.com/CPU-commits/Intranet_BDirectorio/res"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const MSG_LOGIN_FAILED = "Correo o contraseña incorrectos"

var ErrBadCredentials = errors.New("bad credentials")

type AuthService struct {
	admins    map[string]models.Admin
	dummyHash []byte
	sessions  *SessionService
	logger    *zap.Logger
}

// NewAuthService takes correo -> bcrypt hash pairs. Unknown emails are
// compared against a dummy hash of the same cost so both failure paths
// take the same time.
func NewAuthService(
	credentials map[string]string,
	sessions *SessionService,
	logger *zap.Logger,
) (*AuthService, error) {
	cost := bcrypt.DefaultCost
	admins := make(map[string]models.Admin, len(credentials))
	for correo, hash := range credentials {
		correo = strings.ToLower(strings.TrimSpace(correo))
		admins[correo] = models.Admin{
			Correo:       correo,
			PasswordHash: hash,
		}
		if c, err := bcrypt.Cost([]byte(hash)); err == nil {
			cost = c
		}
	}
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("directorio"), cost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		admins:    admins,
		dummyHash: dummyHash,
		sessions:  sessions,
		logger:    logger,
	}, nil
}

func (a *AuthService) Authenticate(correo, contrasena string) (*models.Admin, error) {
	correo = strings.ToLower(strings.TrimSpace(correo))
	admin, ok := a.admins[correo]
	hash := a.dummyHash
	if ok {
		hash = []byte(admin.PasswordHash)
	}
	err := bcrypt.CompareHashAndPassword(hash, []byte(contrasena))
	if !ok || err != nil {
		return nil, ErrBadCredentials
	}
	return &admin, nil
}

// Login verifies the form and opens a session. Every failure carries the
// same generic message.
func (a *AuthService) Login(form *forms.LoginForm) (string, *res.ErrorRes) {
	admin, err := a.Authenticate(form.Correo, form.Contrasena)
	if err != nil {
		a.logger.Info("login rejected", zap.String("correo", form.Correo))
		return "", &res.ErrorRes{
			Err:        errors.New(MSG_LOGIN_FAILED),
			StatusCode: http.StatusUnauthorized,
		}
	}
	token, session, err := a.sessions.Start(admin.Correo)
	if err != nil {
		a.logger.Error("session start failed", zap.Error(err))
		return "", &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	a.logger.Info("login", zap.String("correo", admin.Correo), zap.Time("expires_at", session.ExpiresAt))
	return token, nil
}

func (a *AuthService) Logout(token string) {
	a.sessions.End(token)
}
