package repository

import (
	"github.com/Bester1/hoenders-sub000/internal/localstore"
	"github.com/Bester1/hoenders-sub000/internal/model"
)

type CustomerRepository struct {
	Store *localstore.Store
}

func NewCustomerRepository(store *localstore.Store) *CustomerRepository {
	return &CustomerRepository{Store: store}
}

func profileKey(customerID string) string {
	return "customer_profile_" + customerID
}

// Load returns the stored profile, or ok=false (with the zero profile) when
// none exists or the stored blob was corrupted and reset.
func (r *CustomerRepository) Load(customerID string) (model.Customer, bool, error) {
	var c model.Customer
	ok, err := r.Store.GetJSON(profileKey(customerID), &c)
	return c, ok, err
}

// Save persists the profile for a portal session.
func (r *CustomerRepository) Save(customerID string, c model.Customer) error {
	return r.Store.SetJSON(profileKey(customerID), c)
}
