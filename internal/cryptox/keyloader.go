package cryptox

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/ragrelay/internal/common"
)

// ParsePublicKeyPEM parses an RSA public key from the first PEM block of data.
// PKIX ("PUBLIC KEY"), PKCS#1 ("RSA PUBLIC KEY") and certificates are
// accepted.
func ParsePublicKeyPEM(data []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("no PEM data found")
	}

	var parsed any
	var err error

	switch block.Type {
	case "RSA PUBLIC KEY":
		parsed, err = x509.ParsePKCS1PublicKey(block.Bytes)
	case "CERTIFICATE":
		var cert *x509.Certificate
		cert, err = x509.ParseCertificate(block.Bytes)
		if err == nil {
			parsed = cert.PublicKey
		}
	default:
		parsed, err = x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			// some tools label PKCS#1 keys as "PUBLIC KEY"
			if key, err2 := x509.ParsePKCS1PublicKey(block.Bytes); err2 == nil {
				parsed, err = key, nil
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", block.Type, err)
	}

	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is not RSA: %T", parsed)
	}
	return pub, nil
}

func loadPublicKeyFile(path string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrKeyLoad, err)
	}

	pub, err := ParsePublicKeyPEM(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrKeyLoad, path, err)
	}
	return pub, nil
}

// FileKeyLoader reads and parses the key file on every call.
type FileKeyLoader struct {
	Path string
}

func (l FileKeyLoader) Load() (*rsa.PublicKey, error) {
	return loadPublicKeyFile(l.Path)
}

// CachingKeyLoader keeps the parsed key in memory and reloads it only when
// the file modification time changes. It is safe for concurrent use.
type CachingKeyLoader struct {
	path string

	mu      sync.RWMutex
	key     *rsa.PublicKey
	modTime time.Time
}

func NewCachingKeyLoader(path string) *CachingKeyLoader {
	return &CachingKeyLoader{path: path}
}

func (l *CachingKeyLoader) Load() (*rsa.PublicKey, error) {
	info, err := os.Stat(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrKeyLoad, err)
	}

	if key := l.cached(info.ModTime()); key != nil {
		return key, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.key != nil && l.modTime.Equal(info.ModTime()) {
		return l.key, nil
	}

	key, err := loadPublicKeyFile(l.path)
	if err != nil {
		return nil, err
	}

	l.key = key
	l.modTime = info.ModTime()
	return key, nil
}

func (l *CachingKeyLoader) cached(modTime time.Time) *rsa.PublicKey {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.key != nil && l.modTime.Equal(modTime) {
		return l.key
	}
	return nil
}
