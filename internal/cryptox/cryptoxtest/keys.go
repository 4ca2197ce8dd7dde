// Package cryptoxtest provides RSA key fixtures for tests that exercise the
// downstream credential codec.
package cryptoxtest

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WritePublicKey generates a 2048-bit RSA key pair, writes the public half
// as a PKIX PEM file into a temporary directory and returns the private key
// together with the file path.
func WritePublicKey(t testing.TB) (*rsa.PrivateKey, string) {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}

	path := filepath.Join(t.TempDir(), "public.pem")
	WritePEM(t, path, &priv.PublicKey)

	return priv, path
}

// WritePEM writes pub to path in PKIX PEM form.
func WritePEM(t testing.TB, path string, pub *rsa.PublicKey) {
	t.Helper()

	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}

	data := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write public key: %v", err)
	}
}

// DecryptDownstream reverses the downstream credential encoding and returns
// the plaintext password.
func DecryptDownstream(t testing.TB, priv *rsa.PrivateKey, credential string) string {
	t.Helper()

	plaintext, err := Decrypt(priv, credential)
	if err != nil {
		t.Fatalf("decrypt downstream credential: %v", err)
	}
	return plaintext
}

// Decrypt is DecryptDownstream for code that cannot fail a test directly,
// such as HTTP handlers running on their own goroutine.
func Decrypt(priv *rsa.PrivateKey, credential string) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(credential)
	if err != nil {
		return "", fmt.Errorf("outer base64: %w", err)
	}

	inner, err := rsa.DecryptPKCS1v15(nil, priv, ciphertext)
	if err != nil {
		return "", fmt.Errorf("rsa decrypt: %w", err)
	}

	plaintext, err := base64.StdEncoding.DecodeString(string(inner))
	if err != nil {
		return "", fmt.Errorf("inner base64: %w", err)
	}
	return string(plaintext), nil
}
