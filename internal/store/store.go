// Package store is the agent's view of the remote document store: the
// read-only lookups a print attempt needs and the job queue it claims
// work from.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/phapquanghoasen/sala-printer/internal/model"
)

// ErrAlreadyClaimed reports that a job left the pending state before this
// watcher could claim it. Callers skip the job; it is not an error
// condition worth persisting.
var ErrAlreadyClaimed = errors.New("job already claimed")

// NotFoundError reports a missing document. Missing documents are a hard
// failure for the single job, never a retry condition.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// Documents looks up the read-only documents one print attempt needs.
type Documents interface {
	// UserData resolves the signed-in user's document.
	UserData(ctx context.Context) (*model.User, error)
	// BillData fetches the bill snapshot for one print attempt.
	BillData(ctx context.Context, billID string) (*model.Bill, error)
}

// Queue is the print-job collection for one device class. All writes are
// partial field updates; the documents themselves are created externally.
type Queue interface {
	// Subscribe streams newly observed pending jobs into jobs until ctx is
	// done or the feed fails. Only additions to the pending-filtered view
	// are delivered; updates and removals are ignored.
	Subscribe(ctx context.Context, kind model.JobKind, jobs chan<- model.PrintJob) error
	// Claim conditionally moves a job from pending to printing, returning
	// ErrAlreadyClaimed if the job is no longer pending.
	Claim(ctx context.Context, kind model.JobKind, jobID string) error
	// MarkPrinted records a successful print with a server-assigned
	// completion timestamp.
	MarkPrinted(ctx context.Context, kind model.JobKind, jobID string) error
	// MarkFailed records a failed print with the error message and a
	// server-assigned failure timestamp.
	MarkFailed(ctx context.Context, kind model.JobKind, jobID, msg string) error
}
