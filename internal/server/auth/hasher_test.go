package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("pw1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if digest == "pw1" || digest == "" {
		t.Fatalf("digest must not be empty or equal to the plaintext: %q", digest)
	}

	if !h.Verify("pw1", digest) {
		t.Fatal("Verify must accept the original password")
	}
	if h.Verify("wrong", digest) {
		t.Fatal("Verify must reject a wrong password")
	}
}

func TestBcryptHasher_DigestsDiffer(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	d1, err := h.Hash("same")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	d2, err := h.Hash("same")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if d1 == d2 {
		t.Fatal("two hashes of the same password must differ (random salt)")
	}
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	if h.Verify("anything", "not-a-bcrypt-digest") {
		t.Fatal("Verify must return false for a malformed digest")
	}
	if h.Verify("anything", "") {
		t.Fatal("Verify must return false for an empty digest")
	}
}

func TestDummyDigest_MatchesNothing(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	for _, pw := range []string{"", "password", "AAAAAAAA"} {
		if h.Verify(pw, DummyDigest) {
			t.Fatalf("dummy digest matched %q", pw)
		}
	}
}

func TestNewBcryptHasher_CostClamped(t *testing.T) {
	h := NewBcryptHasher(1000)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("out-of-range cost not clamped: %d", h.cost)
	}
}
