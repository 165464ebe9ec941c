package repository

import (
	"testing"
	"time"

	"github.com/Bester1/hoenders-sub000/internal/localstore"
	"github.com/Bester1/hoenders-sub000/internal/model"
)

func newQueueRepo(t *testing.T) *EmailQueueRepository {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewEmailQueueRepository(store)
}

func TestAppend_AssignsIDAndTimestamp(t *testing.T) {
	repo := newQueueRepo(t)

	entry := &model.EmailQueueEntry{
		Type:        "order_confirmation",
		OrderNumber: "ORD-CUSTOMER-1",
		Status:      model.EmailFailed,
	}
	if err := repo.Append(entry); err != nil {
		t.Fatal(err)
	}
	if entry.ID == "" {
		t.Error("expected an assigned id")
	}
	if entry.CreatedAt.IsZero() {
		t.Error("expected an assigned created_at")
	}
}

func TestLatestFailedForOrder(t *testing.T) {
	repo := newQueueRepo(t)

	older := &model.EmailQueueEntry{
		OrderNumber: "ORD-CUSTOMER-1",
		Status:      model.EmailFailed,
		CreatedAt:   time.Now().Add(-time.Hour),
	}
	newer := &model.EmailQueueEntry{
		OrderNumber: "ORD-CUSTOMER-1",
		Status:      model.EmailError,
		CreatedAt:   time.Now(),
	}
	sent := &model.EmailQueueEntry{
		OrderNumber: "ORD-CUSTOMER-2",
		Status:      model.EmailSent,
		CreatedAt:   time.Now(),
	}
	for _, e := range []*model.EmailQueueEntry{older, newer, sent} {
		if err := repo.Append(e); err != nil {
			t.Fatal(err)
		}
	}

	got := repo.LatestFailedForOrder("ORD-CUSTOMER-1")
	if got == nil {
		t.Fatal("expected an entry")
	}
	if got.ID != newer.ID {
		t.Errorf("expected the newest failed entry, got %+v", got)
	}

	if repo.LatestFailedForOrder("ORD-CUSTOMER-2") != nil {
		t.Error("sent entries are not retryable")
	}
	if repo.LatestFailedForOrder("ORD-CUSTOMER-3") != nil {
		t.Error("unknown order has nothing to retry")
	}
}

func TestUpdate_ReplacesEntry(t *testing.T) {
	repo := newQueueRepo(t)

	entry := &model.EmailQueueEntry{OrderNumber: "ORD-CUSTOMER-1", Status: model.EmailFailed}
	if err := repo.Append(entry); err != nil {
		t.Fatal(err)
	}

	entry.Status = model.EmailSent
	entry.RetryCount = 2
	if err := repo.Update(entry); err != nil {
		t.Fatal(err)
	}

	entries := repo.List()
	if len(entries) != 1 {
		t.Fatalf("update must not duplicate, got %d entries", len(entries))
	}
	if entries[0].Status != model.EmailSent || entries[0].RetryCount != 2 {
		t.Errorf("update not applied: %+v", entries[0])
	}
}
