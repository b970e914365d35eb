package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/slugmart/slugmart/internal/common"
)

func fixedCodec(secret string, now time.Time) *TokenCodec {
	c := NewTokenCodec([]byte(secret), time.Hour)
	c.now = func() time.Time { return now }
	return c
}

func kindOf(t *testing.T, err error) VerificationKind {
	t.Helper()
	var verr *VerificationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *VerificationError, got %T (%v)", err, err)
	}
	return verr.Kind
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("super-secret"), time.Hour)

	tok, err := codec.Issue("acc-123")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	got, err := codec.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != "acc-123" {
		t.Fatalf("account id mismatch: got %q want %q", got, "acc-123")
	}
}

func TestIssue_SetsExplicitExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	codec := fixedCodec("s", now)

	tok, err := codec.Issue("acc-1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		t.Fatalf("ParseUnverified: %v", err)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.Time.Equal(now.Add(time.Hour)) {
		t.Fatalf("unexpected exp: %v", claims.ExpiresAt)
	}
	if claims.Subject != "acc-1" || claims.AccountID != "acc-1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestNewTokenCodec_DefaultTTL(t *testing.T) {
	t.Parallel()

	if c := NewTokenCodec([]byte("s"), 0); c.ttl != DefaultTokenTTL {
		t.Fatalf("ttl = %v, want %v", c.ttl, DefaultTokenTTL)
	}
}

func TestIssue_EmptyAccountID(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenCodec([]byte("s"), time.Hour).Issue(""); err == nil {
		t.Fatal("expected error for empty account id")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	codec := fixedCodec("secret", now)

	tok, err := codec.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	codec.now = func() time.Time { return now.Add(2 * time.Hour) }

	_, err = codec.Verify(tok)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expired must also match common.ErrInvalidToken, got %v", err)
	}
	if kindOf(t, err) != KindExpired {
		t.Fatalf("kind = %v", kindOf(t, err))
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenCodec([]byte("right-secret"), time.Hour).Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenCodec([]byte("wrong-secret"), time.Hour).Verify(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
	if errors.Is(err, common.ErrTokenExpired) {
		t.Fatal("signature failure must not look expired")
	}
	if kindOf(t, err) != KindSignatureInvalid {
		t.Fatalf("kind = %v", kindOf(t, err))
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("s"), time.Hour)
	for _, tok := range []string{"", "garbage-token", "a.b", "a.b.c.d", "eyJhbGciOiJIUzI1NiJ9.!!!.sig"} {
		_, err := codec.Verify(tok)
		if !errors.Is(err, common.ErrInvalidToken) {
			t.Fatalf("%q: expected invalid token, got %v", tok, err)
		}
		if kindOf(t, err) != KindMalformed {
			t.Fatalf("%q: kind = %v", tok, kindOf(t, err))
		}
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	secret := []byte("s")
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		AccountID:        "acc-1",
	}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign hs512: %v", err)
	}

	codec := NewTokenCodec(secret, time.Hour)
	for name, tok := range map[string]string{"none": none, "HS512": hs512} {
		if _, err := codec.Verify(tok); !errors.Is(err, common.ErrInvalidToken) {
			t.Fatalf("%s: expected rejection, got %v", name, err)
		}
	}
}

func TestVerify_RequiresExpiryAndAccountID(t *testing.T) {
	t.Parallel()

	secret := []byte("s")
	codec := NewTokenCodec(secret, time.Hour)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{AccountID: "acc-1"}).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := codec.Verify(noExp); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("token without exp accepted: %v", err)
	}

	noID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}
	_, err = codec.Verify(noID)
	if kindOf(t, err) != KindMalformed {
		t.Fatalf("token without id: %v", err)
	}
}

func TestVerify_AnySingleCharacterMutationFails(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("mutation-secret"), time.Hour)
	tok, err := codec.Issue("8d3c1f6e-5f0b-4f57-9b8e-2a4c6f0e1d11")
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < len(tok); i++ {
		for _, repl := range []byte{'A', 'B', '-', '_', '.'} {
			if tok[i] == repl {
				continue
			}
			mutated := tok[:i] + string(repl) + tok[i+1:]
			if _, err := codec.Verify(mutated); err == nil {
				t.Fatalf("mutation at %d (%q -> %q) verified", i, tok[i], repl)
			}
		}
	}
}
