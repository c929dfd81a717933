package store

import (
	"context"
	"errors"
)

// ErrNotLiked is returned when a visitor removes a like they never added.
// Callers report it as a domain rejection, not a server error.
var ErrNotLiked = errors.New("visitor has not liked this page")

// LikeStoreIface exposes all like data operations.
// No handler may query the DB directly; all access goes through this interface.
type LikeStoreIface interface {
	Get(ctx context.Context, pageID, visitor string) (*PageStat, bool, error)
	Add(ctx context.Context, pageID, visitor string) (*PageStat, error)
	Remove(ctx context.Context, pageID, visitor string) (*PageStat, error)
	Top(ctx context.Context, limit int) ([]*PageStat, error)
}
