package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "umarell",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, path, header string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	var subject string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, _ = SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	AuthMiddleware(testSecret)(next).ServeHTTP(rec, req)
	return rec, subject
}

func TestAuthAcceptsValidToken(t *testing.T) {
	rec, subject := runAuth(t, "/api/topology", "Bearer "+signedToken(t, testSecret))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
	if subject != "umarell" {
		t.Fatalf("subject not propagated: %q", subject)
	}
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	rec, _ := runAuth(t, "/api/topology", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: %d", rec.Code)
	}
}

func TestAuthRejectsWrongScheme(t *testing.T) {
	rec, _ := runAuth(t, "/api/topology", "Basic dXNlcjpwYXNz")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: %d", rec.Code)
	}
}

func TestAuthRejectsForgedToken(t *testing.T) {
	rec, _ := runAuth(t, "/api/topology", "Bearer "+signedToken(t, "other-secret"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: %d", rec.Code)
	}
}

func TestAuthLeavesProbeEndpointsOpen(t *testing.T) {
	for _, path := range []string{"/health", "/metrics"} {
		rec, _ := runAuth(t, path, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d", path, rec.Code)
		}
	}
}
