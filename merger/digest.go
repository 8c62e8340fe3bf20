package merger

import (
	"github.com/minio/highwayhash"
)

// outputDigestKey is fixed so digests of separate runs can be compared; HighwayHash requires 32 bytes
var outputDigestKey = []byte("tagmerge:output-digest:v1:000000")

// Digest returns a HighwayHash-64 fingerprint of encoded output
func Digest(data []byte) uint64 {
	return highwayhash.Sum64(data, outputDigestKey)
}
