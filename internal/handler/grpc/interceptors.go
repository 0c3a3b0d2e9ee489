package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/notes-keeper/internal/app"
	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/internal/utils"
)

// TraceIDMetadataKey is the metadata key mirroring the X-Trace-ID header of
// the REST API.
const TraceIDMetadataKey = "x-trace-id"

func (h *Handler) traceIDInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(TraceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}

	ctx = utils.WithTraceID(h.logger.ForTrace(traceID).WithContext(ctx), traceID)

	_ = grpc.SetHeader(ctx, metadata.Pairs(TraceIDMetadataKey, traceID))

	return handler(ctx, req)
}

func (h *Handler) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	resp, err := handler(ctx, req)

	code := status.Code(err)
	event := log.Info()
	if code != codes.OK && code != codes.NotFound {
		event = log.Error()
	}
	event.
		Str("method", info.FullMethod).
		Str("code", code.String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

// recoverInterceptor turns a handler panic into codes.Internal, the way
// chi's Recoverer answers 500 on the REST side.
func (h *Handler) recoverInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error().
				Str("func", "*Handler.recoverInterceptor").
				Str("method", info.FullMethod).
				Interface("panic", r).
				Msg("recovered from panic")
			err = status.Error(codes.Internal, app.MsgInternalServerError)
		}
	}()

	return handler(ctx, req)
}
