package services

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/contrabandkitchen/backend/cart"
	"github.com/contrabandkitchen/backend/catalog"

	"github.com/rs/zerolog/log"
)

// CartSnapshot is the read model handed to HTTP and websocket clients.
type CartSnapshot struct {
	Lines      []cart.Line `json:"lines"`
	TotalItems int         `json:"totalItems"`
	TotalPrice int64       `json:"totalPrice"`
}

// Notifier receives a snapshot after every cart mutation. The websocket hub
// implements it; a nil notifier disables the signal.
type Notifier interface {
	CartChanged(sessionID string, snap CartSnapshot)
}

// CartService keeps one in-memory cart per browser session. Carts are never
// persisted; a session that goes away takes its cart with it.
type CartService struct {
	Catalog *catalog.Catalog

	// Now is swappable for tests.
	Now func() time.Time

	mu       sync.RWMutex
	sessions map[string]*cartSession
	notifier Notifier
}

// cartSession serializes mutations of a single session's store. The store
// itself is single-flow by design; the mutex is the HTTP transport's concern.
type cartSession struct {
	mu         sync.Mutex
	store      *cart.Store
	lastAccess atomic.Int64 // unix nanos
}

func NewCartService(cat *catalog.Catalog) *CartService {
	return &CartService{
		Catalog:  cat,
		Now:      time.Now,
		sessions: make(map[string]*cartSession),
	}
}

// SetNotifier wires the cart-changed signal. Called once during startup.
func (s *CartService) SetNotifier(n Notifier) { s.notifier = n }

func (s *CartService) session(sessionID string) *cartSession {
	now := s.Now().UnixNano()

	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		sess.lastAccess.Store(now)
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.sessions[sessionID]; ok {
		sess.lastAccess.Store(now)
		return sess
	}
	sess = &cartSession{store: cart.NewStore()}
	sess.lastAccess.Store(now)
	s.sessions[sessionID] = sess
	return sess
}

// EvictIdle drops sessions untouched for longer than ttl and reports how many
// went. Sessions are anonymous and unbounded; without a sweep the registry
// grows forever. An evicted cart is simply gone, the same as a page reload.
func (s *CartService) EvictIdle(ttl time.Duration) int {
	cutoff := s.Now().Add(-ttl).UnixNano()

	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for id, sess := range s.sessions {
		if sess.lastAccess.Load() < cutoff {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// RunEviction sweeps idle sessions on every tick. Start it once, in its own
// goroutine.
func (s *CartService) RunEviction(interval, ttl time.Duration) {
	t := time.NewTicker(interval)
	for range t.C {
		if n := s.EvictIdle(ttl); n > 0 {
			log.Info().Int("sessions", n).Msg("evicted idle carts")
		}
	}
}

func snapshot(st *cart.Store) CartSnapshot {
	return CartSnapshot{
		Lines:      st.Lines(),
		TotalItems: st.TotalItems(),
		TotalPrice: st.TotalPrice(),
	}
}

// mutate runs fn under the session lock and pushes the resulting snapshot to
// the notifier when fn succeeded.
func (s *CartService) mutate(sessionID string, fn func(*cart.Store) error) error {
	sess := s.session(sessionID)
	sess.mu.Lock()
	err := fn(sess.store)
	var snap CartSnapshot
	if err == nil {
		snap = snapshot(sess.store)
	}
	sess.mu.Unlock()

	if err == nil && s.notifier != nil {
		s.notifier.CartChanged(sessionID, snap)
	}
	return err
}

type AddToCartIn struct {
	Name    string `json:"name" binding:"required"`
	Qty     int    `json:"qty" binding:"required,min=1"`
	Variant string `json:"variant" binding:"omitempty,oneof=half full small large"`
}

func (s *CartService) Get(sessionID string) CartSnapshot {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return snapshot(sess.store)
}

func (s *CartService) Add(sessionID string, in *AddToCartIn) error {
	item, ok := s.Catalog.Find(in.Name)
	if !ok {
		return cart.NewValidationError("unknown menu item")
	}
	return s.mutate(sessionID, func(st *cart.Store) error {
		return st.Add(item, in.Qty, catalog.Variant(in.Variant))
	})
}

func (s *CartService) UpdateQty(sessionID string, index, qty int) error {
	return s.mutate(sessionID, func(st *cart.Store) error {
		st.Update(index, qty)
		return nil
	})
}

func (s *CartService) RemoveItem(sessionID string, index int) error {
	return s.mutate(sessionID, func(st *cart.Store) error {
		st.Remove(index)
		return nil
	})
}

func (s *CartService) Clear(sessionID string) error {
	return s.mutate(sessionID, func(st *cart.Store) error {
		st.Clear()
		return nil
	})
}

// Compose renders the session's cart as the order message.
func (s *CartService) Compose(sessionID string) (string, error) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return cart.Compose(sess.store)
}
