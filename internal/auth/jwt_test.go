package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateToken_ReturnsValidToken(t *testing.T) {
	token, err := GenerateToken("test-secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
}

func TestGenerateToken_SetsAdminRole(t *testing.T) {
	token, err := GenerateToken("test-secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ValidateToken("test-secret", token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Role != "admin" {
		t.Errorf("expected role %q, got %q", "admin", claims.Role)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _ := GenerateToken("secret-one")

	_, err := ValidateToken("secret-two", token)
	if err == nil {
		t.Error("expected error for wrong secret, got nil")
	}
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	signed, err := generateToken("test-secret", -1*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error signing token: %v", err)
	}

	_, err = ValidateToken("test-secret", signed)
	if err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateToken_InvalidString(t *testing.T) {
	_, err := ValidateToken("test-secret", "not-a-valid-jwt")
	if err == nil {
		t.Error("expected error for invalid token string, got nil")
	}
}

func TestToken_HasCorrectDuration(t *testing.T) {
	token, _ := GenerateToken("test-secret")

	claims, err := ValidateToken("test-secret", token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedExpiry := time.Now().Add(TokenDuration)
	actualExpiry := claims.ExpiresAt.Time
	delta := expectedExpiry.Sub(actualExpiry).Abs()

	if delta > 2*time.Second {
		t.Errorf("token expiry off by %v; expected ~%v, got %v", delta, expectedExpiry, actualExpiry)
	}
}

func TestValidateToken_RejectsNonHMACSigning(t *testing.T) {
	// Create a token with "none" algorithm to verify the signing method check
	claims := &Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("unexpected error signing token: %v", err)
	}

	_, err = ValidateToken("test-secret", signed)
	if err == nil {
		t.Error("expected error for non-HMAC signing method, got nil")
	}
}
