package order

import (
	"main/internal/schema"
	"main/pkg/exception"
)

// Store is the engine-owned set of live orders. It is mutated only from the
// engine's single consumption context, so it carries no locking.
type Store struct {
	orders map[schema.ClientOrderID]Order
}

// NewStore creates an empty order store.
func NewStore() *Store {
	return &Store{orders: make(map[schema.ClientOrderID]Order)}
}

// Add registers a new order.
func (s *Store) Add(o Order) error {
	if o == nil {
		return exception.ErrOrderNotFound
	}
	if _, ok := s.orders[o.ClientOrderID()]; ok {
		return exception.ErrOrderDuplicate
	}
	s.orders[o.ClientOrderID()] = o
	return nil
}

// Get returns the order by client order id.
func (s *Store) Get(id schema.ClientOrderID) (Order, bool) {
	o, ok := s.orders[id]
	return o, ok
}

// Apply routes an order event to the addressed order's state machine.
func (s *Store) Apply(ev schema.OrderEvent) (Order, error) {
	o, ok := s.orders[ev.OrderID()]
	if !ok {
		return nil, exception.ErrOrderNotFound
	}
	return o, o.Apply(ev)
}

// Len returns the number of tracked orders.
func (s *Store) Len() int {
	return len(s.orders)
}

// Open returns all non-terminal orders.
func (s *Store) Open() []Order {
	out := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		if !o.IsTerminal() {
			out = append(out, o)
		}
	}
	return out
}

// PruneTerminal evicts orders that reached a terminal state and returns the
// number evicted. Orders are never removed before reaching one.
func (s *Store) PruneTerminal() int {
	n := 0
	for id, o := range s.orders {
		if o.IsTerminal() {
			delete(s.orders, id)
			n++
		}
	}
	return n
}
