package security

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	encoded, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Fatalf("expected PHC argon2id format, got %q", encoded)
	}
	if strings.Contains(encoded, "correct horse") {
		t.Fatal("plaintext must not appear in the encoded hash")
	}

	ok, err := VerifyPassword(encoded, "correct horse battery staple")
	if err != nil || !ok {
		t.Fatalf("expected match, got (%v, %v)", ok, err)
	}

	ok, err = VerifyPassword(encoded, "wrong password")
	if err != nil || ok {
		t.Fatalf("expected mismatch, got (%v, %v)", ok, err)
	}
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	t.Parallel()

	a, _ := HashPassword("same input")
	b, _ := HashPassword("same input")
	if a == b {
		t.Fatal("two hashes of the same password must differ by salt")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	for _, encoded := range []string{"", "not-a-hash", "$argon2id$v=19$broken"} {
		if _, err := VerifyPassword(encoded, "x"); err == nil {
			t.Fatalf("expected error for malformed hash %q", encoded)
		}
	}
}
