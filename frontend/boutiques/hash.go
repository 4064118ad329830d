package boutiques

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
)

// hashDescriptor computes a stable hex digest of the descriptor: its JSON
// encoding (encoding/json sorts map keys at every level, giving the same
// canonical form json.dumps(..., sort_keys=True) would) hashed with SHA-1.
// Grounded on _hash_from_boutiques (frontend/boutiques/core.py); the digest
// need only be stable across recompilations of the same descriptor, not
// bit-identical to the original implementation's hash.
func hashDescriptor(descriptor map[string]any) (string, error) {
	encoded, err := json.Marshal(descriptor)
	if err != nil {
		return "", err
	}
	sum := sha1.Sum(encoded)
	return hex.EncodeToString(sum[:]), nil
}
