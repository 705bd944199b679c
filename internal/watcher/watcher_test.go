package watcher

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/phapquanghoasen/sala-printer/internal/model"
	"github.com/phapquanghoasen/sala-printer/internal/store"
)

type fakeQueue struct {
	mu       sync.Mutex
	feed     chan model.PrintJob
	claimErr map[string]error
	status   map[string]model.JobStatus
	errs     map[string]string
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{
		feed:     make(chan model.PrintJob, 16),
		claimErr: make(map[string]error),
		status:   make(map[string]model.JobStatus),
		errs:     make(map[string]string),
	}
}

func (q *fakeQueue) Subscribe(ctx context.Context, kind model.JobKind, jobs chan<- model.PrintJob) error {
	for {
		select {
		case j := <-q.feed:
			select {
			case jobs <- j:
			case <-ctx.Done():
				return ctx.Err()
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (q *fakeQueue) Claim(ctx context.Context, kind model.JobKind, jobID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if err := q.claimErr[jobID]; err != nil {
		return err
	}
	q.status[jobID] = model.StatusPrinting
	return nil
}

func (q *fakeQueue) MarkPrinted(ctx context.Context, kind model.JobKind, jobID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.status[jobID] = model.StatusSuccess
	return nil
}

func (q *fakeQueue) MarkFailed(ctx context.Context, kind model.JobKind, jobID, msg string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.status[jobID] = model.StatusFailed
	q.errs[jobID] = msg
	return nil
}

func (q *fakeQueue) jobStatus(jobID string) model.JobStatus {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.status[jobID]
}

func (q *fakeQueue) jobError(jobID string) string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.errs[jobID]
}

func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestJobsProcessedIndependently(t *testing.T) {
	q := newFakeQueue()
	print := func(ctx context.Context, billID string) error {
		if billID == "bad-bill" {
			return errors.New("printer write failed: broken pipe")
		}
		return nil
	}

	w := Start(q, model.JobClient, print)
	defer w.Stop()

	q.feed <- model.PrintJob{ID: "job-1", BillID: "bad-bill", Status: model.StatusPending}
	q.feed <- model.PrintJob{ID: "job-2", BillID: "good-bill", Status: model.StatusPending}

	eventually(t, func() bool {
		return q.jobStatus("job-1") == model.StatusFailed && q.jobStatus("job-2") == model.StatusSuccess
	}, "jobs did not reach independent terminal states")

	if got := q.jobError("job-1"); got != "printer write failed: broken pipe" {
		t.Errorf("stored error = %q", got)
	}
	if got := q.jobError("job-2"); got != "" {
		t.Errorf("successful job stored error %q", got)
	}
}

func TestAlreadyClaimedJobSkipped(t *testing.T) {
	q := newFakeQueue()
	q.claimErr["job-1"] = store.ErrAlreadyClaimed

	var printed atomic.Int32
	w := Start(q, model.JobKitchen, func(ctx context.Context, billID string) error {
		printed.Add(1)
		return nil
	})
	defer w.Stop()

	q.feed <- model.PrintJob{ID: "job-1", BillID: "bill-1", Status: model.StatusPending}
	q.feed <- model.PrintJob{ID: "job-2", BillID: "bill-2", Status: model.StatusPending}

	eventually(t, func() bool {
		return q.jobStatus("job-2") == model.StatusSuccess
	}, "unclaimed job never completed")

	if printed.Load() != 1 {
		t.Errorf("print called %d times, want 1", printed.Load())
	}
	if got := q.jobStatus("job-1"); got != "" {
		t.Errorf("claimed-elsewhere job status = %q, want untouched", got)
	}
}

func TestClaimFailureLeavesJobPending(t *testing.T) {
	q := newFakeQueue()
	q.claimErr["job-1"] = errors.New("deadline exceeded")

	var printed atomic.Int32
	w := Start(q, model.JobClient, func(ctx context.Context, billID string) error {
		printed.Add(1)
		return nil
	})
	defer w.Stop()

	q.feed <- model.PrintJob{ID: "job-1", BillID: "bill-1", Status: model.StatusPending}
	q.feed <- model.PrintJob{ID: "job-2", BillID: "bill-2", Status: model.StatusPending}

	eventually(t, func() bool {
		return q.jobStatus("job-2") == model.StatusSuccess
	}, "later job never completed")

	if printed.Load() != 1 {
		t.Errorf("print called %d times, want 1", printed.Load())
	}
}

func TestStopEndsSubscription(t *testing.T) {
	q := newFakeQueue()
	w := Start(q, model.JobClient, func(ctx context.Context, billID string) error {
		return nil
	})

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestInFlightJobFinishesAfterStop(t *testing.T) {
	q := newFakeQueue()
	started := make(chan struct{})
	release := make(chan struct{})

	w := Start(q, model.JobClient, func(ctx context.Context, billID string) error {
		close(started)
		<-release
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return nil
	})

	q.feed <- model.PrintJob{ID: "job-1", BillID: "bill-1", Status: model.StatusPending}
	<-started
	w.Stop()
	close(release)

	eventually(t, func() bool {
		return q.jobStatus("job-1") == model.StatusSuccess
	}, "in-flight job did not run to completion after Stop")
}
