package services

import (
	"sort"
	"sync"
	"time"

	"github.com/Bester1/hoenders-sub000/internal/catalog"
	"github.com/Bester1/hoenders-sub000/internal/model"
	"github.com/Bester1/hoenders-sub000/internal/repository"

	"go.uber.org/zap"
)

const (
	MaxItemQuantity = 999
	SnapshotVersion = "1.0"
	SnapshotTTL     = 24 * time.Hour
)

// CartService owns the pending selection per portal session. Every mutation
// persists a fresh snapshot; loads discard snapshots older than the TTL.
// Concurrent sessions on the same customer id resolve last-writer-wins.
type CartService struct {
	Repo   *repository.CartRepository
	Logger *zap.Logger

	mu sync.Mutex
}

func NewCartService(r *repository.CartRepository, logger *zap.Logger) *CartService {
	return &CartService{Repo: r, Logger: logger}
}

// Load restores the persisted cart. An expired or corrupted snapshot is
// cleared and comes back as an empty cart, never as an error.
func (s *CartService) Load(customerID string) model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(customerID)
}

func (s *CartService) load(customerID string) model.Cart {
	snap, ok, err := s.Repo.LoadSnapshot(customerID)
	if err != nil {
		s.Logger.Warn("cart snapshot unreadable, starting empty",
			zap.String("customer_id", customerID), zap.Error(err))
	}
	if !ok {
		return model.Cart{}
	}
	if time.Since(snap.Timestamp) > SnapshotTTL {
		s.Logger.Info("cart snapshot expired",
			zap.String("customer_id", customerID), zap.Time("saved_at", snap.Timestamp))
		if err := s.Repo.DeleteSnapshot(customerID); err != nil {
			s.Logger.Warn("expired cart cleanup failed", zap.Error(err))
		}
		return model.Cart{}
	}
	return snap.Items
}

// SetQuantity upserts a cart entry. Unknown product keys are a no-op,
// quantities outside [0,999] clamp to 0, and 0 removes the entry. The
// returned summary reflects the cart after the change; a Warning is set
// when the snapshot could not be persisted.
func (s *CartService) SetQuantity(customerID, productKey string, quantity int) model.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.load(customerID)

	if _, ok := catalog.Get(productKey); !ok {
		s.Logger.Warn("ignoring unknown product key",
			zap.String("customer_id", customerID), zap.String("product_key", productKey))
		return s.summarize(cart, "")
	}

	if quantity < 0 || quantity > MaxItemQuantity {
		quantity = 0
	}
	if quantity == 0 {
		delete(cart, productKey)
	} else {
		cart[productKey] = model.CartItem{Quantity: quantity, AddedAt: time.Now().UTC()}
	}

	warning := s.save(customerID, cart)
	return s.summarize(cart, warning)
}

// save re-validates every entry against the live catalog and bounds before
// writing, and deletes the key entirely for an empty cart. A failed write
// is downgraded to a warning; the in-memory cart the caller holds stands.
func (s *CartService) save(customerID string, cart model.Cart) string {
	for key, item := range cart {
		if _, ok := catalog.Get(key); !ok {
			delete(cart, key)
			continue
		}
		if item.Quantity <= 0 || item.Quantity > MaxItemQuantity {
			delete(cart, key)
		}
	}

	if len(cart) == 0 {
		if err := s.Repo.DeleteSnapshot(customerID); err != nil {
			s.Logger.Warn("empty cart cleanup failed", zap.Error(err))
		}
		return ""
	}

	snap := &model.CartSnapshot{
		Items:      cart,
		Timestamp:  time.Now().UTC(),
		CustomerID: customerID,
		Version:    SnapshotVersion,
	}
	if err := s.Repo.SaveSnapshot(snap); err != nil {
		s.Logger.Error("cart snapshot write failed, keeping in-memory state",
			zap.String("customer_id", customerID), zap.Error(err))
		return "your cart could not be saved on this device; it may not survive a reload"
	}
	return ""
}

// Clear empties the cart and removes the persisted snapshot.
func (s *CartService) Clear(customerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Repo.DeleteSnapshot(customerID); err != nil {
		s.Logger.Warn("cart clear failed", zap.String("customer_id", customerID), zap.Error(err))
	}
}

// Summary prices the current cart.
func (s *CartService) Summary(customerID string) model.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summarize(s.load(customerID), "")
}

func (s *CartService) summarize(cart model.Cart, warning string) model.CartSummary {
	sum := model.CartSummary{Lines: []model.CartLine{}, Warning: warning}
	for _, key := range sortedKeys(cart) {
		item := cart[key]
		p, ok := catalog.Get(key)
		if !ok {
			continue
		}
		line := model.CartLine{
			ProductKey:        key,
			Name:              p.Name,
			Quantity:          item.Quantity,
			PricePerKg:        p.PricePerKg,
			EstimatedWeightKg: p.EstimatedWeightKg,
			LineWeightKg:      catalog.LineWeightKg(p, item.Quantity),
			LineTotal:         catalog.LineTotal(p, item.Quantity),
		}
		sum.Lines = append(sum.Lines, line)
		sum.DistinctProducts++
		sum.TotalUnits += item.Quantity
		sum.TotalWeightKg += line.LineWeightKg
		sum.EstimatedTotal += line.LineTotal
	}
	sum.TotalWeightKg = catalog.Round2(sum.TotalWeightKg)
	sum.EstimatedTotal = catalog.Round2(sum.EstimatedTotal)
	return sum
}

// sortedKeys gives cart iteration a stable order for summaries and rows.
func sortedKeys(cart model.Cart) []string {
	keys := make([]string, 0, len(cart))
	for k := range cart {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
