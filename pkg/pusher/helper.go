package pusher

import (
	"crypto/sha256"
	"encoding/hex"
)

// TokenHash is a short fingerprint of a device token, safe for logs.
func TokenHash(token string) string {

	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}
