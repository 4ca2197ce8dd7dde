package cryptox

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ragrelay/internal/common"
	"golang.org/x/crypto/argon2"
)

// Base64KeyPrefix marks a configured transport key given in base64 form.
const Base64KeyPrefix = "base64:"

// DeriveTransportKey derives a 128-bit AES key from a shared passphrase and
// salt with argon2id. Client and server must use the same inputs.
func DeriveTransportKey(passphrase []byte, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, 16)
}

// ResolveTransportKey turns configured key material into raw AES key bytes.
//
// A non-empty passphrase takes precedence and is stretched with
// DeriveTransportKey (salt is required). Otherwise key is used verbatim, or
// base64 decoded when it carries the "base64:" prefix.
func ResolveTransportKey(key, passphrase, salt string) ([]byte, error) {

	if passphrase != "" {
		if salt == "" {
			return nil, fmt.Errorf("%w: passphrase requires a salt", common.ErrInvalidKey)
		}
		return DeriveTransportKey([]byte(passphrase), []byte(salt)), nil
	}

	raw := []byte(key)
	if encoded, ok := strings.CutPrefix(key, Base64KeyPrefix); ok {
		b, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrInvalidKey, err)
		}
		raw = b
	}

	switch len(raw) {
	case 16, 24, 32:
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: key must be 16, 24 or 32 bytes, got %d", common.ErrInvalidKey, len(raw))
	}
}
