// internal/domain/cart/repository.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SnapshotRepository persists cart snapshots across sessions. Load returns
// nil without error when no snapshot exists for the session.
type SnapshotRepository interface {
	Load(ctx context.Context, sessionID string) (*Snapshot, error)
	Save(ctx context.Context, sessionID string, snap Snapshot) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisRepository stores one JSON snapshot per session key with a sliding
// expiration, the same way guest carts are kept.
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-backed snapshot repository
func NewRedisRepository(client *redis.Client, ttl time.Duration) *RedisRepository {
	return &RedisRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisRepository) key(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// Load retrieves the snapshot for a session
func (r *RedisRepository) Load(ctx context.Context, sessionID string) (*Snapshot, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required to load cart snapshot")
	}

	data, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot: %w", err)
	}

	return &snap, nil
}

// Save writes the snapshot for a session, resetting its expiration
func (r *RedisRepository) Save(ctx context.Context, sessionID string, snap Snapshot) error {
	if sessionID == "" {
		return fmt.Errorf("session ID required to save cart snapshot")
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}

	return r.client.Set(ctx, r.key(sessionID), data, r.ttl).Err()
}

// Delete removes the snapshot for a session
func (r *RedisRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.key(sessionID)).Err()
}

// MemoryRepository is a map-backed SnapshotRepository for tests and local
// development.
type MemoryRepository struct {
	mu        sync.RWMutex
	snapshots map[string]Snapshot
}

// NewMemoryRepository creates an in-memory snapshot repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		snapshots: make(map[string]Snapshot),
	}
}

// Load retrieves the snapshot for a session
func (m *MemoryRepository) Load(ctx context.Context, sessionID string) (*Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap, ok := m.snapshots[sessionID]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

// Save writes the snapshot for a session
func (m *MemoryRepository) Save(ctx context.Context, sessionID string, snap Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[sessionID] = snap
	return nil
}

// Delete removes the snapshot for a session
func (m *MemoryRepository) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, sessionID)
	return nil
}
