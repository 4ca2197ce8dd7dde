package cryptox

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"fmt"

	"github.com/dmitrijs2005/ragrelay/internal/common"
)

// KeyLoader provides the downstream RSA public key.
type KeyLoader interface {
	Load() (*rsa.PublicKey, error)
}

// DownstreamCodec encrypts passwords the way the RAGFlow HTTP API expects:
// base64(RSA-PKCS1v15(pub, base64(password))).
type DownstreamCodec struct {
	keys KeyLoader
}

func NewDownstreamCodec(keys KeyLoader) *DownstreamCodec {
	return &DownstreamCodec{keys: keys}
}

// Encode returns the downstream credential for plaintext. Key loading
// failures wrap common.ErrKeyLoad.
func (c *DownstreamCodec) Encode(plaintext string) (string, error) {
	pub, err := c.keys.Load()
	if err != nil {
		return "", err
	}

	inner := []byte(base64.StdEncoding.EncodeToString([]byte(plaintext)))
	defer common.WipeByteArray(inner)

	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, pub, inner)
	if err != nil {
		return "", fmt.Errorf("encrypt credential: %w", err)
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}
