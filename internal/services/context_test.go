package services_test

import (
	"context"
	"testing"

	"sourcehub/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRequestID(ctx, "req-123")
	ctx = services.WithViewMode(ctx, "draft")

	if rid, ok := services.RequestIDFromContext(ctx); !ok || rid != "req-123" {
		t.Fatalf("unexpected request id: %v %v", rid, ok)
	}
	if mode, ok := services.ViewModeFromContext(ctx); !ok || mode != "draft" {
		t.Fatalf("unexpected view mode: %v %v", mode, ok)
	}
}

func TestBlankValuesPreserveContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRequestID(ctx, "")
	ctx = services.WithViewMode(ctx, "")
	if _, ok := services.RequestIDFromContext(ctx); ok {
		t.Fatal("expected no request id")
	}
	if _, ok := services.ViewModeFromContext(ctx); ok {
		t.Fatal("expected no view mode")
	}
}
