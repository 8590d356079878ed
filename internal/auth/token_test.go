package auth

import (
	"strings"
	"testing"
	"time"
)

func testName(s string) *string { return &s }

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	payload := SessionPayload{
		UserID: "8b671b74-9d94-4aa3-9c2d-10f4cfbb93b0",
		Email:  "traveler@example.com",
		Name:   testName("Ada"),
	}

	token, err := codec.Issue(payload)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}

	got := codec.Verify(token)
	if got == nil {
		t.Fatal("Verify() rejected a freshly issued token")
	}
	if got.UserID != payload.UserID {
		t.Errorf("UserID = %q, want %q", got.UserID, payload.UserID)
	}
	if got.Email != payload.Email {
		t.Errorf("Email = %q, want %q", got.Email, payload.Email)
	}
	if got.Name == nil || *got.Name != "Ada" {
		t.Errorf("Name = %v, want Ada", got.Name)
	}
}

func TestCodec_NilName(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	token, err := codec.Issue(SessionPayload{UserID: "u", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	got := codec.Verify(token)
	if got == nil {
		t.Fatal("Verify() rejected the token")
	}
	if got.Name != nil {
		t.Errorf("Name = %v, want nil", got.Name)
	}
}

func TestCodec_RejectsWrongSecret(t *testing.T) {
	issuer := NewCodec("secret-one", time.Hour)
	verifier := NewCodec("secret-two", time.Hour)

	token, err := issuer.Issue(SessionPayload{UserID: "u", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if verifier.Verify(token) != nil {
		t.Error("Verify() accepted a token signed with a different secret")
	}
}

func TestCodec_RejectsTamperedToken(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	token, err := codec.Issue(SessionPayload{UserID: "u", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d parts", len(parts))
	}

	// Flip a character in the payload segment; the signature no longer
	// covers the claims.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if codec.Verify(tampered) != nil {
		t.Error("Verify() accepted a tampered token")
	}
}

func TestCodec_RejectsExpiredToken(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	issuedAt := time.Now().Add(-2 * time.Hour)
	codec.now = func() time.Time { return issuedAt }

	token, err := codec.Issue(SessionPayload{UserID: "u", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Still valid just before expiry.
	codec.now = func() time.Time { return issuedAt.Add(time.Hour - time.Minute) }
	if codec.Verify(token) == nil {
		t.Error("Verify() rejected a token before its expiry")
	}

	// Rejected once the clock passes expiry.
	codec.now = time.Now
	if codec.Verify(token) != nil {
		t.Error("Verify() accepted an expired token")
	}
}

func TestCodec_RejectsGarbage(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a token", token: "hello world"},
		{name: "two segments", token: "abc.def"},
		{name: "random base64", token: "YWJj.ZGVm.Z2hp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if codec.Verify(tt.token) != nil {
				t.Errorf("Verify(%q) accepted garbage", tt.token)
			}
		})
	}
}
