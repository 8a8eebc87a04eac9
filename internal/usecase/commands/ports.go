package commands

import (
	"context"
	"errors"
	"log/slog"

	"library-platform/internal/infra/remote"
	"library-platform/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrReferenceNotFound is the single outward signal for a failed reference
// validation. A missing remote resource and an unreachable remote service
// both collapse into it; the distinction survives in the log and in the
// error chain, never on the wire.
var ErrReferenceNotFound = errs.New("user or book not found")

// Write-side record types keep command dependencies off the read-side views.
type UserRecord struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type BookRecord struct {
	ID     uuid.UUID
	Title  string
	Author string
}

type LoanRecord struct {
	ID     uuid.UUID
	UserID uuid.UUID
	BookID uuid.UUID
}

type ReviewRecord struct {
	ID     uuid.UUID
	UserID uuid.UUID
	BookID uuid.UUID
	Rating int
	Text   string
}

// UserSource and BookSource are the orchestration-side views of the remote
// resource client. One outbound lookup per call, no retry, no caching.
type UserSource interface {
	FetchUser(ctx context.Context, id uuid.UUID) (*remote.Snapshot, error)
}

type BookSource interface {
	FetchBook(ctx context.Context, id uuid.UUID) (*remote.Snapshot, error)
}

func foldReferenceFailure(ctx context.Context, logger *slog.Logger, resource string, id uuid.UUID, err error) error {
	cause := "unreachable"
	if errors.Is(err, remote.ErrNotFound) {
		cause = "not_found"
	}
	logger.WarnContext(ctx, "reference validation failed",
		"resource", resource,
		"id", id.String(),
		"cause", cause,
		"error", err,
	)
	return errs.Mark(err, ErrReferenceNotFound)
}
