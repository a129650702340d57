package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a stage cache key from a namespace prefix and the values
// identifying the entry. The values are JSON-encoded before hashing so
// structured key options (artifact format, palette, toggles) participate
// without manual flattening. The key format is prefix:hex(sha256(parts)).
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash returns the hex SHA-256 digest of data. The pipeline uses it to
// content-address compiled pattern documents; the full 64-character digest
// is kept so distinct patterns cannot collide in practice.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
