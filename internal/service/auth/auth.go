package authservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	databaseerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/database"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	serviceerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service"
	constants "github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/config"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/sl"
)

const MinPasswordLen = 6

type UserStorage interface {
	CreateUser(ctx context.Context, username, passwordHash, role string) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)
}

type AuthService struct {
	log      *slog.Logger
	storage  UserStorage
	sessions *sessionStore
	throttle *loginThrottle
}

func New(log *slog.Logger, storage UserStorage) *AuthService {
	return &AuthService{
		log:      log,
		storage:  storage,
		sessions: newSessionStore(constants.SessionTTL),
		throttle: newLoginThrottle(),
	}
}

func (a *AuthService) Register(ctx context.Context, username, password, confirm string) (models.User, error) {
	const op = "service.auth.Register"
	log := a.log.With("op", op)

	if len(password) < MinPasswordLen {
		return models.User{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrPasswordTooShort)
	}
	if password != confirm {
		return models.User{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrPasswordMismatch)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	user, err := a.storage.CreateUser(ctx, username, string(hash), models.RoleUser)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("context canceled", sl.Err(serviceerrors.ErrContextCanceled))
			return models.User{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
		} else if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
			return models.User{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
		} else if errors.Is(err, databaseerrors.ErrAlreadyExists) {
			log.Warn("username already exists", sl.Err(serviceerrors.ErrAlreadyExists))
			return models.User{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrAlreadyExists)
		} else {
			log.Error("Failed to create user", sl.Err(err))
			return models.User{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	log.Info("user registered", "username", user.Username)
	return user, nil
}

// Login verifies credentials and opens a session. It does not reveal whether
// the username or the password was wrong, and never logs the password.
func (a *AuthService) Login(ctx context.Context, username, password string) (Session, error) {
	const op = "service.auth.Login"
	log := a.log.With("op", op)

	if wait := a.throttle.WaitSeconds(username); wait > 0 {
		log.Warn("login throttled", "username", username, "wait_seconds", wait)
		return Session{}, fmt.Errorf("%s: %w", op, &ThrottledError{WaitSeconds: wait})
	}

	user, err := a.storage.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("context canceled", sl.Err(serviceerrors.ErrContextCanceled))
			return Session{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
		} else if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
			return Session{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
		} else if errors.Is(err, databaseerrors.ErrNotFound) {
			a.throttle.RecordFailed(username)
			return Session{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrInvalidCredentials)
		} else {
			log.Error("Failed to fetch user", sl.Err(err))
			return Session{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		a.throttle.RecordFailed(username)
		return Session{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrInvalidCredentials)
	}

	a.throttle.RecordSuccess(username)
	session := a.sessions.create(user.Id, user.Username, user.Role)
	log.Info("user logged in", "username", user.Username)
	return session, nil
}

func (a *AuthService) Logout(token string) {
	a.sessions.delete(token)
}

// SessionByToken resolves a bearer token for the auth middleware.
func (a *AuthService) SessionByToken(token string) (Session, bool) {
	return a.sessions.get(token)
}

// EnsureDemoUsers seeds the built-in demo accounts when they are missing.
func (a *AuthService) EnsureDemoUsers(ctx context.Context) error {
	const op = "service.auth.EnsureDemoUsers"
	log := a.log.With("op", op)

	seed := []struct {
		username string
		password string
		role     string
	}{
		{constants.DemoAdminUsername, constants.DemoAdminPassword, models.RoleAdmin},
		{constants.DemoUserUsername, constants.DemoUserPassword, models.RoleUser},
	}

	for _, u := range seed {
		if _, err := a.storage.UserByUsername(ctx, u.username); err == nil {
			continue
		} else if !errors.Is(err, databaseerrors.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if _, err := a.storage.CreateUser(ctx, u.username, string(hash), u.role); err != nil {
			if errors.Is(err, databaseerrors.ErrAlreadyExists) {
				continue
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		log.Info("demo user seeded", "username", u.username, "role", u.role)
	}

	return nil
}
