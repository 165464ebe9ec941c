package repository

import (
	"github.com/Bester1/hoenders-sub000/internal/localstore"
	"github.com/Bester1/hoenders-sub000/internal/model"
)

type CartRepository struct {
	Store *localstore.Store
}

func NewCartRepository(store *localstore.Store) *CartRepository {
	return &CartRepository{Store: store}
}

func snapshotKey(customerID string) string {
	return "cart_snapshot_" + customerID
}

// LoadSnapshot returns the persisted cart snapshot for a customer, or
// ok=false when none exists. A corrupted snapshot is cleared and reported
// as absent; the cart falls open to empty rather than failing the request.
func (r *CartRepository) LoadSnapshot(customerID string) (*model.CartSnapshot, bool, error) {
	var snap model.CartSnapshot
	ok, err := r.Store.GetJSON(snapshotKey(customerID), &snap)
	if !ok {
		return nil, false, err
	}
	if snap.Items == nil {
		snap.Items = model.Cart{}
	}
	return &snap, true, nil
}

// SaveSnapshot persists the snapshot for its customer.
func (r *CartRepository) SaveSnapshot(snap *model.CartSnapshot) error {
	return r.Store.SetJSON(snapshotKey(snap.CustomerID), snap)
}

// DeleteSnapshot removes the persisted cart. Used when the cart empties,
// after checkout, and when an expired snapshot is detected at load.
func (r *CartRepository) DeleteSnapshot(customerID string) error {
	return r.Store.Delete(snapshotKey(customerID))
}
