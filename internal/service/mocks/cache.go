package mocks

import (
	"context"
	"errors"
	"sync"
	"time"
)

// TrackingCache is an in-memory Cacher that records calls, expirations and versions
type TrackingCache struct {
	mu        sync.Mutex
	GetCalls  int
	SetCalls  int
	BumpCalls int
	data      map[string]cacheEntry
	versions  map[string]int64

	// GetErr, VersionErr, SetErr and BumpErr force the matching call to fail
	GetErr     error
	VersionErr error
	SetErr     error
	BumpErr    error
}

type cacheEntry struct {
	value  string
	expiry time.Time
}

func NewTrackingCache() *TrackingCache {
	return &TrackingCache{
		data:     make(map[string]cacheEntry),
		versions: make(map[string]int64),
	}
}

func (c *TrackingCache) GetValue(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.GetCalls++
	if c.GetErr != nil {
		return "", c.GetErr
	}
	entry, ok := c.data[key]
	if !ok || time.Now().After(entry.expiry) {
		return "", nil
	}
	return entry.value, nil
}

func (c *TrackingCache) GetVersion(_ context.Context, versionKey string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.VersionErr != nil {
		return 0, c.VersionErr
	}
	return c.versions[versionKey], nil
}

func (c *TrackingCache) BumpVersion(_ context.Context, versionKey string, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.BumpCalls++
	if c.BumpErr != nil {
		return c.BumpErr
	}
	c.versions[versionKey]++
	for _, key := range keys {
		delete(c.data, key)
	}
	return nil
}

func (c *TrackingCache) SetIfVersion(_ context.Context, key, versionKey string, version int64, value interface{}, expiration time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SetCalls++
	if c.SetErr != nil {
		return false, c.SetErr
	}
	if c.versions[versionKey] != version {
		return false, nil
	}
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return false, errors.New("unsupported cache value type")
	}
	c.data[key] = cacheEntry{value: s, expiry: time.Now().Add(expiration)}
	return true, nil
}

// Raw returns the stored value for assertions
func (c *TrackingCache) Raw(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.data[key]
	return entry.value, ok
}

// Version returns the current version for assertions
func (c *TrackingCache) Version(versionKey string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.versions[versionKey]
}

// Put seeds the cache directly
func (c *TrackingCache) Put(key, value string, expiration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = cacheEntry{value: value, expiry: time.Now().Add(expiration)}
}
