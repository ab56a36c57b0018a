package store

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/MKhiriev/sterling-client/internal/logger"
	"github.com/MKhiriev/sterling-client/internal/utils"
	"github.com/MKhiriev/sterling-client/models"
)

// DefaultCacheTTL is how long a snapshot is served after it was written.
const DefaultCacheTTL = 5 * time.Minute

const (
	cacheKeyPrefix  = "cache_"
	cacheTimeSuffix = "_time"
)

// CacheKeys returns the blob and write-time keys of the snapshot of token.
func CacheKeys(token string) (blobKey, timeKey string) {
	blobKey = cacheKeyPrefix + token
	return blobKey, blobKey + cacheTimeSuffix
}

// SnapshotCache stores one snapshot of the rooms, reservations and members
// collections per session credential, with a freshness window.
//
// The cache never fails: storage errors, a missing credential and corrupt
// entries all degrade to a miss and are only logged.
type SnapshotCache struct {
	storage     StorageService
	credentials CredentialSource
	ttl         time.Duration
	now         func() time.Time
	logger      *logger.Logger
}

// NewSnapshotCache returns a cache keyed by the token of credentials. A
// non-positive ttl selects [DefaultCacheTTL].
func NewSnapshotCache(storage StorageService, credentials CredentialSource, ttl time.Duration, log *logger.Logger) *SnapshotCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &SnapshotCache{
		storage:     storage,
		credentials: credentials,
		ttl:         ttl,
		now:         time.Now,
		logger:      log,
	}
}

// WithClock replaces the time source. Used by tests.
func (c *SnapshotCache) WithClock(now func() time.Time) *SnapshotCache {
	c.now = now
	return c
}

// TTL returns the freshness window.
func (c *SnapshotCache) TTL() time.Duration {
	return c.ttl
}

type snapshotBlob struct {
	Rooms        json.RawMessage `json:"rooms"`
	Reservations json.RawMessage `json:"reservations"`
	Members      json.RawMessage `json:"members"`
}

// Write stores the three collections and the current time under the keys of
// the active credential. It does nothing without a credential.
func (c *SnapshotCache) Write(ctx context.Context, rooms []models.DiningRoom, reservations []models.Reservation, members []models.Member) {
	token := c.credentials.Token(ctx)
	if token == "" {
		return
	}
	blobKey, timeKey := CacheKeys(token)

	blob := snapshotBlob{
		Rooms:        sanitize(rooms),
		Reservations: sanitize(reservations),
		Members:      sanitize(members),
	}
	payload, err := json.Marshal(blob)
	if err != nil {
		c.logger.Err(err).Str("func", "*SnapshotCache.Write").Msg("error encoding snapshot")
		return
	}

	if err = c.storage.Set(ctx, blobKey, string(payload)); err != nil {
		c.logger.Err(err).Str("func", "*SnapshotCache.Write").Msg("error writing snapshot")
		return
	}
	written := strconv.FormatInt(c.now().UnixMilli(), 10)
	if err = c.storage.Set(ctx, timeKey, written); err != nil {
		c.logger.Err(err).Str("func", "*SnapshotCache.Write").Msg("error writing snapshot time")
	}
}

// Read returns the snapshot of the active credential. ok is false when there
// is no credential, no blob or no write time, when the snapshot is older than
// the TTL, or when the blob is corrupt; corrupt entries are deleted.
func (c *SnapshotCache) Read(ctx context.Context) (models.Snapshot, bool) {
	token := c.credentials.Token(ctx)
	if token == "" {
		return models.Snapshot{}, false
	}
	blobKey, timeKey := CacheKeys(token)

	payload, ok, err := c.storage.Get(ctx, blobKey)
	if err != nil {
		c.logger.Err(err).Str("func", "*SnapshotCache.Read").Msg("error reading snapshot")
		return models.Snapshot{}, false
	}
	if !ok {
		return models.Snapshot{}, false
	}

	writtenRaw, ok, err := c.storage.Get(ctx, timeKey)
	if err != nil {
		c.logger.Err(err).Str("func", "*SnapshotCache.Read").Msg("error reading snapshot time")
		return models.Snapshot{}, false
	}
	if !ok {
		return models.Snapshot{}, false
	}

	written, err := strconv.ParseInt(writtenRaw, 10, 64)
	if err != nil {
		c.logger.Warn().Str("func", "*SnapshotCache.Read").Str("time", writtenRaw).Msg("unreadable snapshot time")
		return models.Snapshot{}, false
	}
	if age := c.now().UnixMilli() - written; age > c.ttl.Milliseconds() {
		return models.Snapshot{}, false
	}

	trimmed := bytes.TrimSpace([]byte(payload))
	var blob snapshotBlob
	if len(trimmed) == 0 || trimmed[0] != '{' {
		err = errCorruptSnapshot
	} else {
		err = json.Unmarshal(trimmed, &blob)
	}
	if err != nil {
		c.logger.Err(err).Str("func", "*SnapshotCache.Read").Msg("corrupt snapshot, deleting")
		c.remove(ctx, blobKey, timeKey)
		return models.Snapshot{}, false
	}

	return models.Snapshot{
		Rooms:        utils.DecodeObjects[models.DiningRoom](blob.Rooms),
		Reservations: utils.DecodeObjects[models.Reservation](blob.Reservations),
		Members:      utils.DecodeObjects[models.Member](blob.Members),
		WrittenAt:    written,
	}, true
}

// Clear deletes the snapshot of the active credential.
func (c *SnapshotCache) Clear(ctx context.Context) {
	c.ClearFor(ctx, c.credentials.Token(ctx))
}

// ClearFor deletes the snapshot stored under token. Callers that may lose
// the credential mid-operation (a 401 invalidates it) resolve the token up
// front and clear by it.
func (c *SnapshotCache) ClearFor(ctx context.Context, token string) {
	if token == "" {
		return
	}
	blobKey, timeKey := CacheKeys(token)
	c.remove(ctx, blobKey, timeKey)
}

func (c *SnapshotCache) remove(ctx context.Context, blobKey, timeKey string) {
	for _, key := range []string{blobKey, timeKey} {
		if err := c.storage.Remove(ctx, key); err != nil {
			c.logger.Err(err).Str("func", "*SnapshotCache.remove").Str("key", key).Msg("error deleting cache entry")
		}
	}
}

// sanitize encodes items as a JSON array of objects. A nil slice becomes [].
func sanitize[T any](items []T) json.RawMessage {
	raw, err := json.Marshal(items)
	if err != nil {
		return json.RawMessage("[]")
	}

	objects := utils.ObjectsOf(raw)
	out, err := json.Marshal(objects)
	if err != nil {
		return json.RawMessage("[]")
	}
	return out
}
