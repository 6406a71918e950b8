package store

import (
	"context"
	"time"
)

// ContextTimeout bounds every storage access so a stalled server surfaces as
// an error instead of a hung request.
var ContextTimeout = 20 * time.Second

func NewDbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), ContextTimeout)
}
