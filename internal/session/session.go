// Package session implements server-side sessions keyed by opaque random
// tokens. The token is the only thing the client holds (HTTP-only cookie);
// everything else lives in Redis, so destroying a session guarantees the
// token never resolves again.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Role is a closed two-variant tag. Never compare against raw strings
// outside this package's constants.
type Role string

const (
	RoleCollaborator Role = "collaborator"
	RoleAdmin        Role = "admin"
)

// Session is the data bound to a token.
// PendingAccessCode marks a collaborator who authenticated by badge but has
// not yet created an access code; such a session grants access to the
// code-setup endpoint and nothing else.
type Session struct {
	UserID            uuid.UUID `json:"user_id"`
	Role              Role      `json:"role"`
	PendingAccessCode bool      `json:"pending_access_code"`
}

// Store issues, resolves, and destroys sessions.
type Store interface {
	// Create persists a new session and returns its token.
	Create(ctx context.Context, userID uuid.UUID, role Role, pendingAccessCode bool) (string, error)
	// Get resolves a token. Returns (nil, nil) for missing, expired, or
	// unknown tokens — callers must treat all three identically.
	Get(ctx context.Context, token string) (*Session, error)
	// Destroy invalidates a token. Idempotent.
	Destroy(ctx context.Context, token string) error
}

const keyPrefix = "session:"

// RedisStore keeps sessions in Redis with a TTL; expiry is handled by Redis
// itself so no sweeper is needed.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, userID uuid.UUID, role Role, pendingAccessCode bool) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(Session{
		UserID:            userID,
		Role:              role,
		PendingAccessCode: pendingAccessCode,
	})
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, keyPrefix+token, data, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, nil
	}
	data, err := s.rdb.Get(ctx, keyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// Corrupt entry — treat as unauthenticated rather than failing the request
		return nil, nil
	}
	return &sess, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}

// newToken returns 256 bits of crypto/rand entropy, hex-encoded.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
