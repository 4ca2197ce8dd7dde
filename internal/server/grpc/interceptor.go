package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/ragrelay/internal/common"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// RequestIDFromContext returns the id assigned to the current call, if any.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// requestIDInterceptor tags every call with a request id, taken from the
// caller's metadata when present, echoes it in the response header and logs
// the call's duration and status.
func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	var requestID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.RequestIDHeaderName)
		if len(values) > 0 {
			requestID = values[0]
		}
	}
	if len(requestID) == 0 {
		requestID = uuid.NewString()
	}

	ctx = context.WithValue(ctx, requestIDKey, requestID)

	// fails only outside a real transport stream, e.g. in unit tests
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, requestID))

	start := time.Now()
	s.logger.Debug(ctx, "call started", "method", info.FullMethod, "request_id", requestID)

	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "call finished",
		"method", info.FullMethod,
		"request_id", requestID,
		"duration", time.Since(start),
		"code", status.Code(err).String(),
	)

	return resp, err
}
