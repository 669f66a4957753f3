package token

import (
	"testing"
	"time"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("test-signing-key", "loopify")

	tok, err := svc.Generate("admin@loopify", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Subject != "admin@loopify" {
		t.Errorf("unexpected subject %q", claims.Subject)
	}
	if claims.Role != "admin" {
		t.Errorf("unexpected role %q", claims.Role)
	}
}

func TestValidate_WrongKey(t *testing.T) {
	tok, err := New("key-one", "loopify").Generate("x", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New("key-two", "loopify").Validate(tok); err == nil {
		t.Error("token signed with another key should not validate")
	}
}

func TestValidate_Expired(t *testing.T) {
	svc := New("test-signing-key", "loopify")
	tok, err := svc.Generate("x", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Validate(tok); err == nil {
		t.Error("expired token should not validate")
	}
}

func TestValidate_WrongIssuer(t *testing.T) {
	tok, err := New("test-signing-key", "other-service").Generate("x", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New("test-signing-key", "loopify").Validate(tok); err == nil {
		t.Error("token from another issuer should not validate")
	}
}
