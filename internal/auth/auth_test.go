package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mmynk/devarc/internal/models"
)

type memUsers struct {
	byID map[string]*models.User
}

func newMemUsers() *memUsers { return &memUsers{byID: make(map[string]*models.User)} }

func (m *memUsers) CreateUser(_ context.Context, user *models.User) error {
	m.byID[user.ID] = user
	return nil
}

func (m *memUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetUserByID(_ context.Context, id string) (*models.User, error) {
	return m.byID[id], nil
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	a := NewPasswordAuthenticator(newMemUsers())

	user, err := a.Register(ctx, " Ana@Example.com ", "Ana", "s3cret-pass")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Email != "ana@example.com" || user.PasswordHash == "s3cret-pass" {
		t.Errorf("user = %+v", user)
	}

	if _, err := a.Register(ctx, "ana@example.com", "Ana", "another-pass"); !errors.Is(err, ErrEmailExists) {
		t.Errorf("duplicate Register err = %v, want ErrEmailExists", err)
	}
	if _, err := a.Register(ctx, "bia@example.com", "Bia", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("weak password err = %v, want ErrWeakPassword", err)
	}
	var ve *models.ValidationError
	if _, err := a.Register(ctx, "not-an-email", "Bia", "long-enough"); !errors.As(err, &ve) {
		t.Errorf("bad e-mail err = %v, want ValidationError", err)
	}

	got, err := a.Authenticate(ctx, "ANA@example.com", "s3cret-pass")
	if err != nil || got.ID != user.ID {
		t.Fatalf("Authenticate = %+v, %v", got, err)
	}
	if _, err := a.Authenticate(ctx, "ana@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v", err)
	}
	if _, err := a.Authenticate(ctx, "nobody@example.com", "s3cret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v", err)
	}

	if _, err := a.Lookup(ctx, user.ID); err != nil {
		t.Errorf("Lookup failed: %v", err)
	}
	if _, err := a.Lookup(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Lookup(missing) err = %v", err)
	}
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	user := models.NewUser("ana@example.com", "Ana", "hash")

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID() != user.ID || claims.Email != user.Email || claims.Issuer != Issuer {
		t.Errorf("claims = %+v", claims)
	}

	other := NewJWTManager("other-secret", time.Hour)
	if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("foreign token err = %v, want ErrInvalidToken", err)
	}

	expired := NewJWTManager("test-secret", -time.Minute)
	old, _ := expired.Generate(user)
	if _, err := m.Validate(old); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token err = %v, want ErrInvalidToken", err)
	}
}

func TestJWTManager_RejectsForeignClaims(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	now := time.Now()
	base := jwt.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	tests := []struct {
		name   string
		method jwt.SigningMethod
		edit   func(*jwt.RegisteredClaims)
	}{
		{"other issuer", jwt.SigningMethodHS256, func(c *jwt.RegisteredClaims) { c.Issuer = "someone-else" }},
		{"no issuer", jwt.SigningMethodHS256, func(c *jwt.RegisteredClaims) { c.Issuer = "" }},
		{"no subject", jwt.SigningMethodHS256, func(c *jwt.RegisteredClaims) { c.Subject = "" }},
		{"no expiry", jwt.SigningMethodHS256, func(c *jwt.RegisteredClaims) { c.ExpiresAt = nil }},
		{"other algorithm", jwt.SigningMethodHS512, func(*jwt.RegisteredClaims) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := &Claims{Email: "ana@example.com", RegisteredClaims: base}
			tt.edit(&claims.RegisteredClaims)
			token, err := jwt.NewWithClaims(tt.method, claims).SignedString([]byte("test-secret"))
			if err != nil {
				t.Fatalf("SignedString failed: %v", err)
			}
			if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Validate err = %v, want ErrInvalidToken", err)
			}
		})
	}

	good := &Claims{Email: "ana@example.com", RegisteredClaims: base}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, good).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}
	if claims, err := m.Validate(token); err != nil || claims.UserID() != "user-1" {
		t.Errorf("Validate = %+v, %v", claims, err)
	}
}

func TestJWTManager_Clock(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	issued := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	token, err := m.Generate(models.NewUser("ana@example.com", "Ana", "hash"))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	m.now = func() time.Time { return issued.Add(59 * time.Minute) }
	if _, err := m.Validate(token); err != nil {
		t.Errorf("Validate before expiry failed: %v", err)
	}
	m.now = func() time.Time { return issued.Add(61 * time.Minute) }
	if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate after expiry err = %v, want ErrInvalidToken", err)
	}
}
