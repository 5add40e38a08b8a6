package auth

import (
	"strings"
	"testing"
	"time"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	token, err := codec.Issue("user_1", "alice@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Fatalf("expected 3 dot-separated segments, got %d", len(parts))
	}

	claims, ok := codec.Verify(token)
	if !ok {
		t.Fatalf("valid token did not verify")
	}
	if claims.UserID != "user_1" || claims.Email != "alice@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestCodec_Verify_Tampered(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	token, err := codec.Issue("user_1", "alice@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	parts := strings.Split(token, ".")
	parts[1] = "eyJ0YW1wZXJlZCI6dHJ1ZX0"
	if _, ok := codec.Verify(strings.Join(parts, ".")); ok {
		t.Fatalf("tampered token verified")
	}
}

func TestCodec_Verify_WrongSecret(t *testing.T) {
	token, err := NewCodec("secret", time.Hour).Issue("user_1", "alice@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, ok := NewCodec("other-secret", time.Hour).Verify(token); ok {
		t.Fatalf("token signed with another secret verified")
	}
}

func TestCodec_Verify_Expired(t *testing.T) {
	codec := NewCodec("secret", -time.Minute)

	token, err := codec.Issue("user_1", "alice@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, ok := codec.Verify(token); ok {
		t.Fatalf("expired token verified")
	}
}

func TestCodec_Verify_Garbage(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	for _, input := range []string{"", "not-a-jwt-token", "invalid.token.here", "a.b", strings.Repeat(".", 10)} {
		if _, ok := codec.Verify(input); ok {
			t.Fatalf("garbage input %q verified", input)
		}
	}
}
