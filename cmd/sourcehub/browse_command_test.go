package main

import (
	"errors"
	"testing"

	"sourcehub/internal/services"
)

func TestBrowseRequiresTerminal(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "q", "browse")
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("browse error = %v, want validation error", err)
	}
	requireContains(t, err.Error(), "interactive terminal")
}
