package utils

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	id := uuid.New()

	token, err := CreateToken(id, "admin")
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.UserID != id.String() || claims.Role != "admin" {
		t.Fatalf("claims = %s/%s, want %s/admin", claims.UserID, claims.Role, id)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}
