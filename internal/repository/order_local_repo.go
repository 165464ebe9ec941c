package repository

import (
	"errors"

	"github.com/Bester1/hoenders-sub000/internal/localstore"
	"github.com/Bester1/hoenders-sub000/internal/model"
)

const (
	orderLogKey    = "order_log"
	lineItemLogKey = "order_items_log"
)

// OrderLocalRepository is the append-only order log in the local store.
// It is the authoritative copy: the remote write may fail or diverge, the
// local log never loses an accepted order.
type OrderLocalRepository struct {
	Store *localstore.Store
}

func NewOrderLocalRepository(store *localstore.Store) *OrderLocalRepository {
	return &OrderLocalRepository{Store: store}
}

// AppendOrder adds one order to the local log.
func (r *OrderLocalRepository) AppendOrder(order *model.Order) error {
	var log []model.Order
	// corruption drops the value; an empty log is the recovery state
	if _, err := r.Store.GetJSON(orderLogKey, &log); err != nil {
		log = nil
	}
	log = append(log, *order)
	return r.Store.SetJSON(orderLogKey, log)
}

// AppendLineItems adds the denormalized rows of one order to the local
// line-item log.
func (r *OrderLocalRepository) AppendLineItems(rows []model.OrderRow) error {
	var log []model.OrderRow
	if _, err := r.Store.GetJSON(lineItemLogKey, &log); err != nil {
		log = nil
	}
	log = append(log, rows...)
	return r.Store.SetJSON(lineItemLogKey, log)
}

// ListOrders returns every locally recorded order, oldest first.
func (r *OrderLocalRepository) ListOrders() ([]model.Order, error) {
	var log []model.Order
	if _, err := r.Store.GetJSON(orderLogKey, &log); err != nil {
		return nil, err
	}
	return log, nil
}

// GetOrder finds one order in the local log by order number.
func (r *OrderLocalRepository) GetOrder(orderNumber string) (*model.Order, error) {
	log, err := r.ListOrders()
	if err != nil {
		return nil, err
	}
	for i := range log {
		if log[i].OrderNumber == orderNumber {
			return &log[i], nil
		}
	}
	return nil, errors.New("order not found")
}
