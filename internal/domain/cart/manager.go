// internal/domain/cart/manager.go
package cart

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// persistTimeout bounds each best-effort snapshot write
const persistTimeout = 3 * time.Second

// Manager hands out one Store per customer session. The first access for a
// session restores its persisted snapshot; from then on every mutation is
// written back through the store's observer hook. Persistence is
// best-effort: a failed write is logged and never rolls back the in-memory
// state.
type Manager struct {
	repo    SnapshotRepository
	taxRate decimal.Decimal
	logger  *logrus.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

// NewManager creates a session cart manager
func NewManager(repo SnapshotRepository, taxRate decimal.Decimal, logger *logrus.Logger) *Manager {
	return &Manager{
		repo:    repo,
		taxRate: taxRate,
		logger:  logger,
		stores:  make(map[string]*Store),
	}
}

// Get returns the cart store for a session, creating and restoring it on
// first use.
func (m *Manager) Get(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	if store, ok := m.stores[sessionID]; ok {
		m.mu.Unlock()
		return store
	}
	m.mu.Unlock()

	// Restore outside the lock; snapshot loads may hit Redis
	store := NewStore(m.taxRate)

	snap, err := m.repo.Load(ctx, sessionID)
	if err != nil {
		m.logger.WithError(err).WithField("session_id", sessionID).
			Warn("Failed to restore cart snapshot, starting empty")
	} else if snap != nil {
		store.Restore(*snap)
	}

	store.Subscribe(func(s Snapshot) {
		m.persist(sessionID, s)
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another request may have built the store concurrently; keep the first
	if existing, ok := m.stores[sessionID]; ok {
		return existing
	}
	m.stores[sessionID] = store
	return store
}

// Forget drops the in-memory store and the persisted snapshot for a session
func (m *Manager) Forget(ctx context.Context, sessionID string) {
	m.mu.Lock()
	delete(m.stores, sessionID)
	m.mu.Unlock()

	if err := m.repo.Delete(ctx, sessionID); err != nil {
		m.logger.WithError(err).WithField("session_id", sessionID).
			Warn("Failed to delete cart snapshot")
	}
}

func (m *Manager) persist(sessionID string, snap Snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := m.repo.Save(ctx, sessionID, snap); err != nil {
		m.logger.WithError(err).WithField("session_id", sessionID).
			Warn("Failed to persist cart snapshot")
	}
}
