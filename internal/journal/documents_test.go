package journal

import (
	"context"
	"errors"
	"testing"
)

func TestDocuments(t *testing.T) {
	j := openTemp(t)
	ctx := context.Background()

	if err := j.StoreDocument(ctx, "abc", []byte("<pipeline/>")); err != nil {
		t.Fatalf("StoreDocument failed: %v", err)
	}
	if err := j.StoreDocument(ctx, "abc", []byte("<pipeline/>")); err != nil {
		t.Errorf("Expected storing the same digest twice to succeed, got %v", err)
	}
	got, err := j.Document(ctx, "abc")
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	if string(got) != "<pipeline/>" {
		t.Errorf("Expected stored content, got %q", got)
	}

	if _, err := j.Document(ctx, "missing"); !errors.Is(err, ErrNoDocument) {
		t.Errorf("Expected ErrNoDocument, got %v", err)
	}
	if err := j.StoreDocument(ctx, "", nil); err == nil {
		t.Error("Expected error for empty digest")
	}
}
