package service

import "testing"

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("s3cretpass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cretpass" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !h.Verify("s3cretpass", hash) {
		t.Fatalf("expected password to verify against its own hash")
	}
}

func TestBcryptHasher_Mismatch(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("rightpass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h.Verify("wrongpass", hash) {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestBcryptHasher_SaltRandomisation(t *testing.T) {
	h := NewBcryptHasher()

	first, err := h.Hash("samepass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := h.Hash("samepass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if first == second {
		t.Fatalf("two hashes of the same password must differ")
	}
	if !h.Verify("samepass", first) || !h.Verify("samepass", second) {
		t.Fatalf("both hashes must verify against the password")
	}
}
