package jwt_test

import (
	"errors"
	"testing"

	"farhatna/config"
	"farhatna/infras/jwt"
)

func newJWTService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "farhatna-test"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60 * 24

	return jwt.New(cfg)
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newJWTService()

	pair, err := svc.GenerateTokenPair("user-1", "test@example.com", "CUSTOMER")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be generated")
	}

	if pair.TokenType != "Bearer" {
		t.Errorf("expected token type Bearer, got %s", pair.TokenType)
	}

	if pair.ExpiresIn != 15*60 {
		t.Errorf("expected expires_in %d, got %d", 15*60, pair.ExpiresIn)
	}

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claims.UserID != "user-1" || claims.Email != "test@example.com" || claims.Role != "CUSTOMER" {
		t.Errorf("unexpected claims: %+v", claims)
	}

	if claims.TokenID == "" {
		t.Error("expected a token ID")
	}
}

func TestValidateToken_TypeMismatch(t *testing.T) {
	svc := newJWTService()

	pair, err := svc.GenerateTokenPair("user-1", "test@example.com", "CUSTOMER")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// An access token presented as a refresh token is signed with a
	// different secret and must be rejected.
	if _, err := svc.ValidateToken(pair.AccessToken, jwt.RefreshToken); err == nil {
		t.Error("expected access token to fail refresh validation")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newJWTService()

	if _, err := svc.ValidateToken("not-a-token", jwt.AccessToken); !errors.Is(err, jwt.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestRefreshTokens(t *testing.T) {
	svc := newJWTService()

	pair, err := svc.GenerateTokenPair("user-1", "test@example.com", "CUSTOMER")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fresh, err := svc.RefreshTokens(pair.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.ValidateToken(fresh.AccessToken, jwt.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claims.UserID != "user-1" || claims.Role != "CUSTOMER" {
		t.Errorf("expected claims to carry over, got %+v", claims)
	}

	if _, err := svc.RefreshTokens(pair.AccessToken); err == nil {
		t.Error("expected refresh with an access token to fail")
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		expected    string
		expectError bool
	}{
		{
			name:     "valid header",
			header:   "Bearer some-token",
			expected: "some-token",
		},
		{
			name:        "missing header",
			header:      "",
			expectError: true,
		},
		{
			name:        "wrong scheme",
			header:      "Basic dXNlcjpwYXNz",
			expectError: true,
		},
		{
			name:        "no scheme",
			header:      "some-token",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.expectError {
				if err == nil {
					t.Error("expected error")
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if token != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, token)
			}
		})
	}
}
