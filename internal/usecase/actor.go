package usecase

import (
	"context"

	"github.com/google/uuid"
)

type actorKey struct{}

// WithActor records the signed-in user performing the request. Audit entries use it.
func WithActor(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorFrom returns the signed-in user, or nil for anonymous requests.
func ActorFrom(ctx context.Context) *uuid.UUID {
	id, ok := ctx.Value(actorKey{}).(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}
