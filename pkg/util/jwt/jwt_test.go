package jwt

import (
	"testing"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	Init("test-secret", 15, 168)

	token, err := GenerateAccessToken("U_alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "U_alice" {
		t.Errorf("user = %s, want U_alice", claims.UserID)
	}
	if claims.Subject != "access_token" {
		t.Errorf("subject = %s, want access_token", claims.Subject)
	}
	if claims.TokenID != "" {
		t.Errorf("access tokens carry no token id, got %s", claims.TokenID)
	}
}

func TestRefreshTokenCarriesTokenID(t *testing.T) {
	Init("test-secret", 15, 168)

	token, tokenID, err := GenerateRefreshToken("U_alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if tokenID == "" {
		t.Fatal("no token id issued")
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "refresh_token" {
		t.Errorf("subject = %s, want refresh_token", claims.Subject)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token id = %s, want %s", claims.TokenID, tokenID)
	}
}

func TestParseRejectsForeignSignature(t *testing.T) {
	Init("secret-one", 15, 168)
	token, err := GenerateAccessToken("U_alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	Init("secret-two", 15, 168)
	if _, err := ParseToken(token); err == nil {
		t.Fatal("token signed with another secret was accepted")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	Init("test-secret", 15, 168)
	if _, err := ParseToken("not.a.token"); err == nil {
		t.Fatal("garbage token was accepted")
	}
}
