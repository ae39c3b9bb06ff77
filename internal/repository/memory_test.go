package repository

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestMemoryRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryItemRepository()

	created, err := repo.Create(ctx, "Widget", "A fine widget")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("create: empty id")
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("create: created_at %v != updated_at %v", created.CreatedAt, created.UpdatedAt)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Name != "Widget" {
		t.Fatalf("get: got %v", got)
	}

	// Unknown ids are absence, not errors.
	got, err = repo.GetByID(ctx, "no-such-id")
	if err != nil || got != nil {
		t.Fatalf("get unknown: got (%v, %v), want (nil, nil)", got, err)
	}

	// Partial update leaves the other field alone and bumps updated_at.
	time.Sleep(2 * time.Millisecond)
	desc := "An even finer widget"
	updated, err := repo.Update(ctx, created.ID, nil, &desc)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Widget" || updated.Description != desc {
		t.Fatalf("update: got %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatal("update: updated_at did not advance")
	}

	// No fields supplied: the current row comes back untouched.
	same, err := repo.Update(ctx, created.ID, nil, nil)
	if err != nil {
		t.Fatalf("no-op update: %v", err)
	}
	if !same.UpdatedAt.Equal(updated.UpdatedAt) {
		t.Fatal("no-op update modified the row")
	}

	updated, err = repo.Update(ctx, "no-such-id", &desc, nil)
	if err != nil || updated != nil {
		t.Fatalf("update unknown: got (%v, %v), want (nil, nil)", updated, err)
	}

	ok, err := repo.Delete(ctx, created.ID)
	if err != nil || !ok {
		t.Fatalf("delete: got (%v, %v), want (true, nil)", ok, err)
	}
	ok, err = repo.Delete(ctx, created.ID)
	if err != nil || ok {
		t.Fatalf("second delete: got (%v, %v), want (false, nil)", ok, err)
	}
}

func TestMemoryRepositoryListOrderAndPaging(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryItemRepository()

	for i := 1; i <= 5; i++ {
		if _, err := repo.Create(ctx, fmt.Sprintf("item %d", i), "desc"); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	items, err := repo.List(ctx, 0, 0, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("list: got %d items, want 5", len(items))
	}
	// Newest first; equal timestamps fall back to insertion order.
	for i, want := range []string{"item 5", "item 4", "item 3", "item 2", "item 1"} {
		if items[i].Name != want {
			t.Fatalf("list[%d]: got %q, want %q", i, items[i].Name, want)
		}
	}

	items, err = repo.List(ctx, 2, 1, "")
	if err != nil {
		t.Fatalf("paged list: %v", err)
	}
	if len(items) != 2 || items[0].Name != "item 4" || items[1].Name != "item 3" {
		t.Fatalf("paged list: got %v", items)
	}

	items, err = repo.List(ctx, 10, 100, "")
	if err != nil {
		t.Fatalf("offset past end: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("offset past end: got %d items, want 0", len(items))
	}
}

func TestMemoryRepositoryListClampsLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryItemRepository()

	for i := 0; i < ListDefaultLimit+10; i++ {
		if _, err := repo.Create(ctx, fmt.Sprintf("item %d", i), "desc"); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	items, err := repo.List(ctx, -5, 0, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != ListDefaultLimit {
		t.Fatalf("negative limit: got %d items, want the default %d", len(items), ListDefaultLimit)
	}

	items, err = repo.List(ctx, ListMaxLimit+100, 0, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != ListDefaultLimit+10 {
		t.Fatalf("oversized limit: got %d items, want all %d", len(items), ListDefaultLimit+10)
	}
}

func TestMemoryRepositoryListFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryItemRepository()

	seed := []struct{ name, desc string }{
		{"Red apple", "A fruit"},
		{"Green APPLE", "Another fruit"},
		{"Banana", "Yellow and appleless"},
		{"Cherry", "Small and red"},
	}
	for _, s := range seed {
		if _, err := repo.Create(ctx, s.name, s.desc); err != nil {
			t.Fatalf("create %q: %v", s.name, err)
		}
	}

	// Case-insensitive, matches name or description.
	items, err := repo.List(ctx, 0, 0, "apple")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("q=apple: got %d items, want 3", len(items))
	}

	items, err = repo.List(ctx, 0, 0, "RED")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("q=RED: got %d items, want 2", len(items))
	}

	items, err = repo.List(ctx, 0, 0, "no match at all")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("unmatched filter: got %d items, want 0", len(items))
	}
}
