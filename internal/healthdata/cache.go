package healthdata

import (
	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	megabyte       = 1024 * 1024
	minCacheSizeMB = 8
	// upper bound of one encoded record, oura rows are the widest
	maxRecordBytes = 512
)

// CacheSizeMB returns a cache size whose per entry limit, 1/1024 of the
// freecache size, holds a response of queryLimit records.
func CacheSizeMB(queryLimit int) int {
	needed := queryLimit * maxRecordBytes * 1024
	sizeMB := (needed + megabyte - 1) / megabyte
	return max(sizeMB, minCacheSizeMB)
}

// ResponseCache keeps encoded endpoint responses keyed by request URL.
type ResponseCache struct {
	cache         *freecache.Cache
	expireSeconds int
}

func NewResponseCache(sizeMB, expireSeconds int) *ResponseCache {
	return &ResponseCache{
		cache:         freecache.NewCache(sizeMB * megabyte),
		expireSeconds: expireSeconds,
	}
}

func (c *ResponseCache) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get([]byte(key))
	if err != nil {
		// freecache.ErrNotFound
		return nil, false
	}
	return val, true
}

func (c *ResponseCache) Set(key string, val []byte) {
	if err := c.cache.Set([]byte(key), val, c.expireSeconds); err != nil {
		log.Errorf("response cache, set [%s]: %s", key, err)
	}
}

// MaxAge is how long responses are cached, in seconds.
func (c *ResponseCache) MaxAge() int {
	return c.expireSeconds
}

func (c *ResponseCache) Clear() {
	c.cache.Clear()
}
