// Package cryptox implements the two credential transforms performed by the
// relay.
//
// # Transport credentials
//
// Between the relay client and the relay server a password travels as an
// AES-GCM sealed box under a pre-shared key (see TransportCodec). The box is
// carried as three base64 strings: ciphertext, 12-byte nonce and 16-byte
// authentication tag. A fresh random nonce is drawn for every encryption.
//
// # Downstream credentials
//
// The RAGFlow HTTP API expects passwords encrypted with its RSA public key
// using PKCS#1 v1.5 padding. The plaintext is base64 encoded before
// encryption and the ciphertext is base64 encoded again (see DownstreamCodec).
//
// # Errors
//
// Failures are reported with the sentinels from package common:
// ErrDecoding, ErrAuthentication, ErrInvalidKey and ErrKeyLoad.
package cryptox
