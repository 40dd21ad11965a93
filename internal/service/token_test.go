package service_test

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/obazhan/sportclub/internal/domain"
	"github.com/obazhan/sportclub/internal/service"
)

func TestTokenService_RoundTrip(t *testing.T) {
	tokens := service.NewTokenService(testJWTSecret)

	for _, id := range []int64{1, 42, 1<<40 + 7} {
		signed, err := tokens.Issue(id)
		if err != nil {
			t.Fatalf("Issue(%d): %v", id, err)
		}

		got, err := tokens.Verify(signed)
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if got != id {
			t.Fatalf("expected subject %d, got %d", id, got)
		}
	}
}

func TestTokenService_Verify_Failures(t *testing.T) {
	tokens := service.NewTokenService(testJWTSecret)

	valid, err := tokens.Issue(7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	otherSecret, err := service.NewTokenService("a-completely-different-signing-secret").Issue(7)
	if err != nil {
		t.Fatalf("Issue with other secret: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"truncated", valid[:len(valid)-5]},
		{"wrong secret", otherSecret},
		{"expired", signExpired(t, 7)},
		{"non-numeric subject", signWithSubject(t, "abc")},
		{"alg none", signAlgNone(t)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Verify(tt.token)
			// Every failure collapses to the same error.
			if !errors.Is(err, domain.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}

// signExpired signs a token with the test secret that expired an hour ago.
func signExpired(t *testing.T, id int64) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(id, 10),
		"iat": now.Add(-2 * time.Hour).Unix(),
		"exp": now.Add(-time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}
	return signed
}

func signWithSubject(t *testing.T, sub string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func signAlgNone(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": "7",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign alg-none token: %v", err)
	}
	return signed
}
