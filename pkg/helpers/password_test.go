package helpers

import "testing"

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if hash == "" || hash == "s3cret" {
		t.Fatalf("HashPassword() returned %q", hash)
	}
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if !CheckPasswordHash(hash, "s3cret") {
		t.Error("CheckPasswordHash() = false for matching password")
	}
	if CheckPasswordHash(hash, "wrong") {
		t.Error("CheckPasswordHash() = true for wrong password")
	}
}

func TestCheckPasswordHashMalformed(t *testing.T) {
	// A malformed stored hash must verify false, not panic or error.
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$xx$broken"} {
		if CheckPasswordHash(hash, "anything") {
			t.Errorf("CheckPasswordHash(%q) = true, want false", hash)
		}
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	h2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical; salt missing")
	}
}
