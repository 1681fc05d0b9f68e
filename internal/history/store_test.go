package history_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"courier/internal/history"
	"courier/internal/testsupport"
)

func TestAppendAssignsIDAndTimestamp(t *testing.T) {
	store := testsupport.MustOpenStore(t)

	ctx := context.Background()
	rec, err := store.Append(ctx, history.Record{Kind: "email", Target: "ana@email.com"})
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("expected an ID to be assigned")
	}
	if rec.CreatedAt.IsZero() {
		t.Fatal("expected a timestamp to be stamped")
	}
}

func TestAppendPreservesExplicitTimestamp(t *testing.T) {
	store := testsupport.MustOpenStore(t)

	ctx := context.Background()
	at := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	if _, err := store.Append(ctx, history.Record{Kind: "sales", CreatedAt: at}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	records, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if !records[0].CreatedAt.Equal(at) {
		t.Fatalf("timestamp changed on round trip: %v", records[0].CreatedAt)
	}
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	store := testsupport.MustOpenStore(t)

	ctx := context.Background()
	const appends = 5
	for i := 0; i < appends; i++ {
		rec := history.Record{Kind: fmt.Sprintf("kind-%d", i)}
		if _, err := store.Append(ctx, rec); err != nil {
			t.Fatalf("Append %d failed: %v", i, err)
		}
	}

	records, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(records) != appends {
		t.Fatalf("expected %d records, got %d", appends, len(records))
	}
	for i, rec := range records {
		if rec.Kind != fmt.Sprintf("kind-%d", i) {
			t.Fatalf("record %d out of order: %q", i, rec.Kind)
		}
	}
}

func TestAllReturnsSnapshot(t *testing.T) {
	store := testsupport.MustOpenStore(t)

	ctx := context.Background()
	if _, err := store.Append(ctx, history.Record{Kind: "email"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	before, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if _, err := store.Append(ctx, history.Record{Kind: "sms"}); err != nil {
		t.Fatalf("second Append failed: %v", err)
	}
	if len(before) != 1 {
		t.Fatalf("earlier snapshot changed: %d records", len(before))
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 records, got %d", count)
	}
}

func TestAppendNeverDeduplicates(t *testing.T) {
	store := testsupport.MustOpenStore(t)

	ctx := context.Background()
	rec := history.Record{ID: "fixed", Kind: "email", CreatedAt: time.Now().UTC()}
	for i := 0; i < 3; i++ {
		if _, err := store.Append(ctx, rec); err != nil {
			t.Fatalf("Append %d failed: %v", i, err)
		}
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 records, got %d", count)
	}
}
