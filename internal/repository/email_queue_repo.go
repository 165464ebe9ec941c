package repository

import (
	"time"

	"github.com/Bester1/hoenders-sub000/internal/localstore"
	"github.com/Bester1/hoenders-sub000/internal/model"

	"github.com/google/uuid"
)

const emailQueueKey = "email_queue"

// EmailQueueRepository tracks every notification attempt in the local
// store. Entries are appended and updated, never removed, so the dashboard
// keeps the full delivery history.
type EmailQueueRepository struct {
	Store *localstore.Store
}

func NewEmailQueueRepository(store *localstore.Store) *EmailQueueRepository {
	return &EmailQueueRepository{Store: store}
}

func (r *EmailQueueRepository) load() []model.EmailQueueEntry {
	var entries []model.EmailQueueEntry
	if _, err := r.Store.GetJSON(emailQueueKey, &entries); err != nil {
		return nil
	}
	return entries
}

// Append records a new entry, assigning id and created_at when missing.
func (r *EmailQueueRepository) Append(entry *model.EmailQueueEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	entries := append(r.load(), *entry)
	return r.Store.SetJSON(emailQueueKey, entries)
}

// Update replaces the stored entry with the same id.
func (r *EmailQueueRepository) Update(entry *model.EmailQueueEntry) error {
	entries := r.load()
	for i := range entries {
		if entries[i].ID == entry.ID {
			entries[i] = *entry
			return r.Store.SetJSON(emailQueueKey, entries)
		}
	}
	// entry vanished (store reset); re-append so the outcome is not lost
	return r.Append(entry)
}

// List returns all entries, newest first.
func (r *EmailQueueRepository) List() []model.EmailQueueEntry {
	entries := r.load()
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}

// LatestFailedForOrder returns the newest failed or errored entry for an
// order number, or nil when there is nothing to retry.
func (r *EmailQueueRepository) LatestFailedForOrder(orderNumber string) *model.EmailQueueEntry {
	entries := r.load()
	var latest *model.EmailQueueEntry
	for i := range entries {
		e := &entries[i]
		if e.OrderNumber != orderNumber {
			continue
		}
		if e.Status != model.EmailFailed && e.Status != model.EmailError {
			continue
		}
		if latest == nil || e.CreatedAt.After(latest.CreatedAt) {
			latest = e
		}
	}
	if latest == nil {
		return nil
	}
	cp := *latest
	return &cp
}
