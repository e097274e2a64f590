package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(bcryptTestCost)

	digest, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "pw123" || strings.Contains(digest, "pw123") {
		t.Error("digest contains the plaintext password")
	}
	if !h.Verify("pw123", digest) {
		t.Error("Verify = false for the correct password")
	}
	if h.Verify("other", digest) {
		t.Error("Verify = true for a different password")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	h := NewHasher(bcryptTestCost)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password are identical; expected per-call salt")
	}
}

func TestVerify_MalformedDigest(t *testing.T) {
	h := NewHasher(bcryptTestCost)

	for _, digest := range []string{"", "not-a-bcrypt-hash", "$2a$10$tooshort"} {
		if h.Verify("pw123", digest) {
			t.Errorf("Verify(%q) = true; want false", digest)
		}
	}
}

func TestNewHasher_CostOutOfRange(t *testing.T) {
	h := NewHasher(99)
	if h.cost != DefaultCost {
		t.Errorf("cost = %d; want DefaultCost %d", h.cost, DefaultCost)
	}
}

// bcryptTestCost keeps the test suite fast; production uses DefaultCost.
const bcryptTestCost = 4
