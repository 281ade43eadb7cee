package graph

import (
	"encoding/json"

	"github.com/minio/highwayhash"
)

// hashKey is the fixed 32-byte highwayhash key, kept identical across
// runs so that a Chain's content hash is stable across processes.
var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash returns a 64-bit content hash of a Chain's canonical wire form,
// letting callers cheaply detect whether a loaded Chain's definition has
// changed since it was last registered.
func (c *Chain) Hash() (uint64, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return 0, err
	}
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	if _, err := h.Write(data); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
