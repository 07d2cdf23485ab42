package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestTokenExpiryReadsClaim(t *testing.T) {
	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	tok := signed(t, jwt.MapClaims{"user_id": "u1", "exp": exp.Unix()})

	got, ok := TokenExpiry(tok)
	if !ok {
		t.Fatal("expected exp claim")
	}
	if !got.Equal(exp) {
		t.Fatalf("expected %v, got %v", exp, got)
	}
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := signed(t, jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()})
	future := signed(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})
	noExp := signed(t, jwt.MapClaims{"user_id": "u1"})

	if !TokenExpired(past, now) {
		t.Error("past exp must be expired")
	}
	if TokenExpired(future, now) {
		t.Error("future exp must not be expired")
	}
	if TokenExpired(noExp, now) {
		t.Error("token without exp must not be treated as expired")
	}
	if TokenExpired("opaque-token", now) {
		t.Error("opaque token must not be treated as expired")
	}
}

func TestMarkdownEscapesHTML(t *testing.T) {
	out := string(Markdown("**food drive**\n<script>alert(1)</script>"))
	if !strings.Contains(out, "<strong>food drive</strong>") {
		t.Fatalf("expected bold text, got %s", out)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("raw html must not pass through, got %s", out)
	}
}

func TestTimeAgo(t *testing.T) {
	if TimeAgo(time.Time{}) != "" {
		t.Fatal("zero time renders empty")
	}
	if got := TimeAgo(time.Now().Add(-2 * time.Hour)); got != "2 hours ago" {
		t.Fatalf("unexpected %q", got)
	}
}
