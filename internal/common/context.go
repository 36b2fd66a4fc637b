package common

import (
	"context"

	"github.com/google/uuid"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeySubmissionID contextKey = "submission_id"
	ContextKeyRequestID    contextKey = "request_id"
)

// WithSubmissionID adds a submission ID to the context
func WithSubmissionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ContextKeySubmissionID, id)
}

// SubmissionIDFromContext extracts the submission ID from context, minting a
// new one when the caller did not set it.
func SubmissionIDFromContext(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(ContextKeySubmissionID).(uuid.UUID); ok {
		return id
	}
	return uuid.New()
}

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}
