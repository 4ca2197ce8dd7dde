package common

// RequestIDHeaderName is the gRPC metadata key carrying the per-call
// correlation id.
const RequestIDHeaderName = "x-request-id"

// AuthorizationHeaderName is the downstream HTTP header carrying the session
// token returned by login.
const AuthorizationHeaderName = "Authorization"
