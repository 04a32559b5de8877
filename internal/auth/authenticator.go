package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/collections-service/internal/domain"
)

// Classified login rejections. Anything else returned by Authenticate is an
// infrastructure fault and must surface as a server error, not a rejection.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserBlocked        = errors.New("user is blocked")
)

// UserStore is the slice of the user repository the auth subsystem reads.
// Access is read-only; blocking and unblocking happen elsewhere.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Authenticator validates credentials and enforces the blocked-account policy.
type Authenticator struct {
	users UserStore
}

// NewAuthenticator constructs an authenticator over the given store.
func NewAuthenticator(users UserStore) *Authenticator {
	return &Authenticator{users: users}
}

// ValidateCredentials looks the user up by email and verifies the password
// against the stored bcrypt hash. Unknown email and wrong password both come
// back as (nil, nil) so callers cannot tell the two apart. Only store
// failures produce an error.
func (a *Authenticator) ValidateCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, nil
	}

	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, nil
	}
	return user, nil
}

// Authenticate classifies a login attempt. The blocked check runs strictly
// after credential verification: a blocked user presenting a wrong password
// gets ErrInvalidCredentials, so account state never leaks to a caller who
// has not proven the credential.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := a.ValidateCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if user.IsBlocked {
		return nil, ErrUserBlocked
	}
	return user, nil
}
