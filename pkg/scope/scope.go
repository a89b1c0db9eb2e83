package scope

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"textbook-rag/internal/model"
)

const DefaultTTL = 7 * 24 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySecret  = errors.New("jwt secret is empty")
)

// Payload is the claim set carried by a session token.
type Payload struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager issues and verifies session tokens.
type Manager interface {
	Issue(userID, email string) (string, time.Time, error)
	Verify(token string) (model.Scope, error)
}

type implManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New returns an HS256 token manager.
func New(secret string, ttl time.Duration) (Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (m *implManager) Issue(userID, email string) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	claims := Payload{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("scope.Issue: %w", err)
	}
	return token, exp, nil
}

func (m *implManager) Verify(token string) (model.Scope, error) {
	var claims Payload
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return model.Scope{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return model.Scope{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return model.Scope{UserID: claims.Subject, Email: claims.Email}, nil
}

type scopeKey struct{}

// SetScopeToContext stores the caller identity on ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the caller identity, or an anonymous scope.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, _ := ctx.Value(scopeKey{}).(model.Scope)
	return sc
}
