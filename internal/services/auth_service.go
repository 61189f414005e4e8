package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/rahulsingh558/the-piquant-pan/internal/kv"
)

const sessionKeyPrefix = "admin_session:"

// ErrInvalidCredentials is returned on a wrong username or password. There is
// no lockout or backoff; the caller surfaces a message and the admin retries.
var ErrInvalidCredentials = errors.New("invalid username or password")

type adminSession struct {
	Username string `json:"username"`
	LoginAt  int64  `json:"login_at"` // unix ms
}

// AuthService is the admin authentication collaborator: a single fixed
// credential pair and sessions that expire a fixed duration after login.
// When the session store is unavailable it degrades silently to sessions
// held only in process memory.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	IsLoggedIn(ctx context.Context, token string) bool
	Logout(ctx context.Context, token string)
	Username(ctx context.Context, token string) string
}

type authService struct {
	sessions     kv.Store
	username     string
	passwordHash []byte
	timeout      time.Duration
	now          func() time.Time

	mu    sync.Mutex
	inMem map[string]adminSession
}

func NewAuthService(sessions kv.Store, username, password string, timeout time.Duration) AuthService {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash admin password")
	}
	return &authService{
		sessions:     sessions,
		username:     username,
		passwordHash: hash,
		timeout:      timeout,
		now:          time.Now,
		inMem:        make(map[string]adminSession),
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.username {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	session := adminSession{Username: username, LoginAt: s.now().UnixMilli()}

	data, err := json.Marshal(session)
	if err != nil {
		return "", err
	}
	if err := s.sessions.Set(ctx, sessionKeyPrefix+token, string(data), s.timeout); err != nil {
		// Storage unavailable: keep the session in process memory only.
		log.Warn().Err(err).Msg("session store unavailable, using in-memory session")
		s.mu.Lock()
		s.inMem[token] = session
		s.mu.Unlock()
	}
	return token, nil
}

func (s *authService) IsLoggedIn(ctx context.Context, token string) bool {
	session, ok := s.lookup(ctx, token)
	if !ok {
		return false
	}

	// The store's TTL already covers expiry; the timestamp check also covers
	// in-memory sessions and stores without expiration support.
	age := s.now().UnixMilli() - session.LoginAt
	if age > s.timeout.Milliseconds() {
		s.Logout(ctx, token)
		return false
	}
	return true
}

func (s *authService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.sessions.Remove(ctx, sessionKeyPrefix+token); err != nil {
		log.Warn().Err(err).Msg("failed to remove session")
	}
	s.mu.Lock()
	delete(s.inMem, token)
	s.mu.Unlock()
}

func (s *authService) Username(ctx context.Context, token string) string {
	session, ok := s.lookup(ctx, token)
	if !ok {
		return ""
	}
	return session.Username
}

func (s *authService) lookup(ctx context.Context, token string) (adminSession, bool) {
	if token == "" {
		return adminSession{}, false
	}

	raw, err := s.sessions.Get(ctx, sessionKeyPrefix+token)
	if err == nil {
		var session adminSession
		if json.Unmarshal([]byte(raw), &session) == nil {
			return session, true
		}
		return adminSession{}, false
	}

	s.mu.Lock()
	session, ok := s.inMem[token]
	s.mu.Unlock()
	return session, ok
}
