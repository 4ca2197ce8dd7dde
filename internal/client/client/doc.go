// Package client is the relay client: it seals plaintext passwords with the
// shared transport key and calls the RagServices gRPC service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) with the three
//     relay operations Register, Login and GetAPIKey.
//  2. A concrete gRPC implementation (see GRPCClient) that manages the
//     connection, tags each call with a request id and maps gRPC status codes
//     to sentinel errors.
//
// # Error Handling
//
// Downstream failures are not errors: they come back as reply text, exactly
// as the relay phrased them. Only RPC-level faults are returned as errors,
// matchable with errors.Is: ErrUnavailable and ErrInvalidRequest.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation and deadlines.
package client
