package auth

import (
	"bytes"
	"testing"

	"github.com/s7eamy/learn2-api/config"
)

func TestPasswordHashing(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}

	hash := HashPassword("pw1", salt)
	if !VerifyPassword("pw1", salt, hash) {
		t.Error("correct password rejected")
	}
	if VerifyPassword("pw2", salt, hash) {
		t.Error("wrong password accepted")
	}

	otherSalt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}
	if bytes.Equal(salt, otherSalt) {
		t.Error("two generated salts are identical")
	}
	if bytes.Equal(hash, HashPassword("pw1", otherSalt)) {
		t.Error("same password with different salts produced identical hashes")
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	config.LoadEnv()

	token, err := CreateSessionToken("session-123")
	if err != nil {
		t.Fatalf("CreateSessionToken: %v", err)
	}

	sid, err := ParseSessionToken(token)
	if err != nil {
		t.Fatalf("ParseSessionToken: %v", err)
	}
	if sid != "session-123" {
		t.Errorf("got session ID %q, want %q", sid, "session-123")
	}
}

func TestSessionTokenTampered(t *testing.T) {
	config.LoadEnv()

	token, err := CreateSessionToken("session-123")
	if err != nil {
		t.Fatalf("CreateSessionToken: %v", err)
	}

	if _, err := ParseSessionToken(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}
	if _, err := ParseSessionToken("not-a-token"); err == nil {
		t.Error("garbage token accepted")
	}
}
