// internal/domain/cart/store.go
package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// moneyPlaces is the scale every monetary getter rounds to
const moneyPlaces = 2

// Observer is notified synchronously after every applied mutation.
// Rejected inputs (non-positive quantity, missing product) never notify.
type Observer func(Snapshot)

// Store owns the two cart lists and is their only writer. All other
// components see read-only snapshots. Mutations either apply fully or not
// at all; invalid input is ignored rather than surfaced (cart edits are
// low-stakes and reversible by the customer).
//
// One store exists per customer session; construct it explicitly and pass
// the handle around instead of sharing package state.
type Store struct {
	mu        sync.Mutex
	taxRate   decimal.Decimal
	toBuy     []LineItem
	wishlist  []LineItem
	observers []Observer
}

// NewStore creates an empty cart store. The tax rate is read once here and
// fixed for the store's lifetime.
func NewStore(taxRate decimal.Decimal) *Store {
	return &Store{
		taxRate:  taxRate,
		toBuy:    []LineItem{},
		wishlist: []LineItem{},
	}
}

// Subscribe registers an observer for mutation notifications
func (s *Store) Subscribe(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// list resolves a list identity to its backing slice. Only these two lists
// exist; anything else maps to the to-buy list so the operation stays total.
func (s *Store) list(t ListType) *[]LineItem {
	if t == ListWishlist {
		return &s.wishlist
	}
	return &s.toBuy
}

// AddItem adds a line item to the target list. If the product is already in
// that list its quantity is incremented; the stored name, price and color
// snapshots are left untouched. Candidates with a non-positive quantity or a
// negative price are ignored.
func (s *Store) AddItem(candidate LineItem, target ListType) {
	if candidate.Quantity <= 0 || candidate.UnitPrice.IsNegative() || !target.Valid() {
		return
	}

	s.mu.Lock()
	list := s.list(target)
	merged := false
	for i := range *list {
		if (*list)[i].ProductID == candidate.ProductID {
			(*list)[i].Quantity += candidate.Quantity
			merged = true
			break
		}
	}
	if !merged {
		*list = append(*list, candidate)
	}
	s.notifyLocked()
	s.mu.Unlock()
}

// RemoveItem removes the product from both lists. Removal is global, not
// list-scoped, and removing an absent product is a no-op.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	removed := false
	for _, list := range []*[]LineItem{&s.toBuy, &s.wishlist} {
		for i := range *list {
			if (*list)[i].ProductID == productID {
				*list = append((*list)[:i], (*list)[i+1:]...)
				removed = true
				break
			}
		}
	}
	if removed {
		s.notifyLocked()
	}
	s.mu.Unlock()
}

// UpdateQuantity sets the quantity of the product's entry in the named list.
// Non-positive quantities are ignored; reduce-to-zero-means-remove is a
// policy for callers, not the store.
func (s *Store) UpdateQuantity(productID string, quantity int, target ListType) {
	if quantity <= 0 || !target.Valid() {
		return
	}

	s.mu.Lock()
	list := s.list(target)
	for i := range *list {
		if (*list)[i].ProductID == productID {
			(*list)[i].Quantity = quantity
			s.notifyLocked()
			break
		}
	}
	s.mu.Unlock()
}

// MoveItem moves the product's entry from one list to the other, appending
// it to the destination with quantity, price and color preserved. Moving to
// the same list or moving an absent product is a no-op. The entry count
// across both lists never changes.
func (s *Store) MoveItem(productID string, from, to ListType) {
	if from == to || !from.Valid() || !to.Valid() {
		return
	}

	s.mu.Lock()
	src := s.list(from)
	dst := s.list(to)
	for i := range *src {
		if (*src)[i].ProductID == productID {
			item := (*src)[i]
			*src = append((*src)[:i], (*src)[i+1:]...)
			*dst = append(*dst, item)
			s.notifyLocked()
			break
		}
	}
	s.mu.Unlock()
}

// Clear empties both lists unconditionally
func (s *Store) Clear() {
	s.mu.Lock()
	s.toBuy = []LineItem{}
	s.wishlist = []LineItem{}
	s.notifyLocked()
	s.mu.Unlock()
}

// Restore replaces the cart state from a persisted snapshot. Observers are
// not notified: a restore re-establishes state, it is not a mutation.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	s.toBuy = cloneList(snap.ToBuy)
	s.wishlist = cloneList(snap.Wishlist)
	s.mu.Unlock()
}

// Snapshot returns a deep copy of the current cart state
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subtotal is the sum of unit price times quantity over the to-buy list,
// rounded to cents. The wishlist never contributes to monetary totals.
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

// Tax is the subtotal times the configured rate, rounded to cents
// independently of the subtotal's rounding.
func (s *Store) Tax() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.taxLocked()
}

// Total is the already-rounded subtotal plus the already-rounded tax. Each
// of the three getters rounds on its own, so rounding error never compounds
// across calls.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked().Add(s.taxLocked()).Round(moneyPlaces)
}

// ItemCount is the sum of quantities over the named list, not the entry
// count: one line with quantity 5 counts as 5.
func (s *Store) ItemCount(target ListType) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range *s.list(target) {
		count += item.Quantity
	}
	return count
}

// Totals bundles the derived calculations for rendering
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := s.subtotalLocked()
	tax := s.taxLocked()

	toBuyCount := 0
	for _, item := range s.toBuy {
		toBuyCount += item.Quantity
	}
	wishlistCount := 0
	for _, item := range s.wishlist {
		wishlistCount += item.Quantity
	}

	return Totals{
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal.Add(tax).Round(moneyPlaces),
		ToBuyCount:    toBuyCount,
		WishlistCount: wishlistCount,
	}
}

func (s *Store) subtotalLocked() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range s.toBuy {
		sum = sum.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum.Round(moneyPlaces)
}

func (s *Store) taxLocked() decimal.Decimal {
	return s.subtotalLocked().Mul(s.taxRate).Round(moneyPlaces)
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		ToBuy:    cloneList(s.toBuy),
		Wishlist: cloneList(s.wishlist),
	}
}

func (s *Store) notifyLocked() {
	snap := s.snapshotLocked()
	for _, fn := range s.observers {
		fn(snap)
	}
}

func cloneList(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
