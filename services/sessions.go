package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/CPU-commits/Intranet_BDirectorio/models"
	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

var ErrInvalidSession = errors.New("invalid session")

type SessionStore interface {
	Save(session *models.Session)
	Get(id string) (*models.Session, bool)
	Delete(id string)
}

type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*models.Session),
	}
}

func (m *MemorySessionStore) Save(session *models.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
}

func (m *MemorySessionStore) Get(id string) (*models.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[id]
	return session, ok
}

func (m *MemorySessionStore) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

type Claims struct {
	Usuario string `json:"usuario"`
	jwt.StandardClaims
}

type SessionService struct {
	store  SessionStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionService(store SessionStore, secret string, ttl time.Duration) *SessionService {
	return &SessionService{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Start stores a new session for correo and returns the signed cookie value.
func (s *SessionService) Start(correo string) (string, *models.Session, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", nil, err
	}
	now := s.now()
	session := &models.Session{
		ID:        id.String(),
		Usuario:   correo,
		ExpiresAt: now.Add(s.ttl),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Usuario: correo,
		StandardClaims: jwt.StandardClaims{
			Id:        session.ID,
			IssuedAt:  now.Unix(),
			ExpiresAt: session.ExpiresAt.Unix(),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}
	s.store.Save(session)
	return signed, session, nil
}

func (s *SessionService) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	return claims, err
}

// Resolve returns the live session behind a cookie value.
func (s *SessionService) Resolve(tokenString string) (*models.Session, error) {
	if tokenString == "" {
		return nil, ErrInvalidSession
	}
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, ErrInvalidSession
	}
	session, ok := s.store.Get(claims.Id)
	if !ok || session.Usuario != claims.Usuario {
		return nil, ErrInvalidSession
	}
	if session.Expired(s.now()) {
		s.store.Delete(session.ID)
		return nil, ErrInvalidSession
	}
	return session, nil
}

// End revokes the session behind a cookie value, expired or not. Tokens
// with a bad signature are ignored.
func (s *SessionService) End(tokenString string) {
	claims, err := s.parse(tokenString)
	if err != nil {
		var validationErr *jwt.ValidationError
		if !errors.As(err, &validationErr) || validationErr.Errors != jwt.ValidationErrorExpired {
			return
		}
	}
	if claims.Id != "" {
		s.store.Delete(claims.Id)
	}
}
