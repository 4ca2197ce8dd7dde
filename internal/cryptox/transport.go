package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/ragrelay/internal/common"
)

const (
	// NonceSize is the AES-GCM nonce length in bytes.
	NonceSize = 12
	// TagSize is the AES-GCM authentication tag length in bytes.
	TagSize = 16
)

// TransportCredential is a password sealed for the RPC hop. All fields are
// standard base64 with padding.
type TransportCredential struct {
	EncryptedPassword string
	Nonce             string
	Tag               string
}

// TransportCodec seals and opens transport credentials with a fixed AES key.
// It is safe for concurrent use.
type TransportCodec struct {
	aead cipher.AEAD
}

// NewTransportCodec builds a codec for the given AES key. The key must be
// 16, 24 or 32 bytes long.
func NewTransportCodec(key []byte) (*TransportCodec, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidKey, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidKey, err)
	}

	return &TransportCodec{aead: aead}, nil
}

// Encode seals plaintext under a freshly generated random nonce.
func (c *TransportCodec) Encode(plaintext string) (TransportCredential, error) {

	// nonce
	nonce := common.GenerateRandByteArray(NonceSize)

	// Seal returns ciphertext||tag
	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	split := len(sealed) - TagSize

	return TransportCredential{
		EncryptedPassword: base64.StdEncoding.EncodeToString(sealed[:split]),
		Nonce:             base64.StdEncoding.EncodeToString(nonce),
		Tag:               base64.StdEncoding.EncodeToString(sealed[split:]),
	}, nil
}

// Decode opens a transport credential and returns the plaintext password.
//
// Malformed input (bad base64, wrong nonce or tag length, non UTF-8
// plaintext) yields an error wrapping common.ErrDecoding. A tag that does not
// verify yields common.ErrAuthentication.
func (c *TransportCodec) Decode(cred TransportCredential) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(cred.EncryptedPassword)
	if err != nil {
		return "", fmt.Errorf("%w: encrypted password: %v", common.ErrDecoding, err)
	}

	nonce, err := base64.StdEncoding.DecodeString(cred.Nonce)
	if err != nil {
		return "", fmt.Errorf("%w: nonce: %v", common.ErrDecoding, err)
	}
	if len(nonce) != NonceSize {
		return "", fmt.Errorf("%w: nonce must be %d bytes, got %d", common.ErrDecoding, NonceSize, len(nonce))
	}

	tag, err := base64.StdEncoding.DecodeString(cred.Tag)
	if err != nil {
		return "", fmt.Errorf("%w: tag: %v", common.ErrDecoding, err)
	}
	if len(tag) != TagSize {
		return "", fmt.Errorf("%w: tag must be %d bytes, got %d", common.ErrDecoding, TagSize, len(tag))
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", common.ErrAuthentication
	}
	defer common.WipeByteArray(plaintext)

	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: password is not valid UTF-8", common.ErrDecoding)
	}

	return string(plaintext), nil
}
