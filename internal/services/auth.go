package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/auth"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/common"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/models"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/repositories/users"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/storage"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService registers users and manages the active session. A session lives
// either in the durable store (when the user asked to be remembered) or in the
// per-run session store, and expires a fixed interval after login regardless
// of activity.
type AuthService struct {
	users   users.Repository
	durable storage.Store
	session storage.Store
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
}

func NewAuthService(u users.Repository, durable, session storage.Store, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{
		users:   u,
		durable: durable,
		session: session,
		secret:  secret,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Register creates an account with a bcrypt hash of the password. It returns
// common.ErrUserExists when the email is already registered and
// common.ErrorValidation when the name, email, or password is unacceptable.
func (s *AuthService) Register(ctx context.Context, name, email string, password []byte) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("%w: invalid email address", common.ErrorValidation)
	}
	if len(password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", common.ErrorValidation)
	}
	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(ctx, email, &models.User{Name: name, PasswordHash: string(hash)})
}

// Login verifies the credentials and opens a session. A missing account and a
// wrong password are reported as distinct errors. When remember is true the
// session is written to the durable store, otherwise to the session store; the
// other scope is cleared so a stale earlier login cannot shadow this one.
func (s *AuthService) Login(ctx context.Context, email string, password []byte, remember bool) (*models.Session, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), password); err != nil {
		return nil, common.ErrWrongPassword
	}

	token, err := auth.GenerateToken(email, s.secret, s.ttl)
	if err != nil {
		return nil, err
	}
	sess := &models.Session{
		Email:         email,
		Name:          u.Name,
		Authenticated: true,
		Timestamp:     s.now().UnixMilli(),
		Token:         token,
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}

	target, other := s.session, s.durable
	if remember {
		target, other = s.durable, s.session
	}
	if err := other.Delete(ctx, storage.KeyAuthState); err != nil {
		return nil, err
	}
	if err := target.Set(ctx, storage.KeyAuthState, raw); err != nil {
		return nil, err
	}
	return sess, nil
}

// CurrentSession returns the active session, checking the durable store before
// the session store. It returns common.ErrNotAuthenticated when no session
// exists and common.ErrSessionExpired when one exists but has outlived the
// configured lifetime; an expired or invalid session is cleared from both
// scopes before returning.
func (s *AuthService) CurrentSession(ctx context.Context) (*models.Session, error) {
	sess, err := s.readSession(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil || !sess.Authenticated {
		return nil, common.ErrNotAuthenticated
	}
	if sess.Age(s.now()) > s.ttl {
		if err := s.clear(ctx); err != nil {
			return nil, err
		}
		return nil, common.ErrSessionExpired
	}
	email, err := auth.GetEmailFromToken(sess.Token, s.secret)
	if err != nil || email != sess.Email {
		if err := s.clear(ctx); err != nil {
			return nil, err
		}
		return nil, common.ErrNotAuthenticated
	}
	return sess, nil
}

// Logout removes the session from both scopes. It is not an error to log out
// while no session exists.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.clear(ctx)
}

func (s *AuthService) readSession(ctx context.Context) (*models.Session, error) {
	for _, st := range []storage.Store{s.durable, s.session} {
		raw, err := st.Get(ctx, storage.KeyAuthState)
		if err != nil {
			return nil, err
		}
		if raw == nil {
			continue
		}
		var sess models.Session
		if err := json.Unmarshal(raw, &sess); err != nil {
			// unreadable state is treated as absent
			continue
		}
		return &sess, nil
	}
	return nil, nil
}

func (s *AuthService) clear(ctx context.Context) error {
	if err := s.durable.Delete(ctx, storage.KeyAuthState); err != nil {
		return err
	}
	return s.session.Delete(ctx, storage.KeyAuthState)
}
