package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strings"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests. The rate limiter uses it to
// build bucket keys from client addresses without storing them in clear.
//
// Hasher instances are reused through a sync.Pool, so a single Hasher is
// safe for concurrent use.
type Hasher struct {
	pool sync.Pool
}

// NewHasher creates a Hasher keyed with hashKey.
//
// Example usage:
//
//	h := utils.NewHasher(cfg.App.TokenSignKey)
//	key := h.HashParts(clientIP, qrCodeID)
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Hash computes an HMAC-SHA256 digest over data using a pooled instance.
func (h *Hasher) Hash(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// HashParts joins parts with a NUL separator and returns the hex-encoded
// digest. The separator keeps ("ab","c") and ("a","bc") apart.
func (h *Hasher) HashParts(parts ...string) string {
	return hex.EncodeToString(h.Hash([]byte(strings.Join(parts, "\x00"))))
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Unlike [Hasher], this function creates a new HMAC instance on each call.
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
