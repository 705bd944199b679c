// Package watcher drives pending print jobs from the queue through the
// print pipeline: claim, print, terminal status. Each job is processed in
// its own goroutine; one failing print never blocks the feed.
package watcher

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/phapquanghoasen/sala-printer/internal/model"
	"github.com/phapquanghoasen/sala-printer/internal/store"
)

// PrintFunc renders and delivers one bill.
type PrintFunc func(ctx context.Context, billID string) error

// reconnectDelay paces retries after a dropped feed.
const reconnectDelay = 5 * time.Second

// Watcher owns one queue subscription. Stop is the only way to end it; the
// caller holds exactly one handle per device class.
type Watcher struct {
	kind   model.JobKind
	queue  store.Queue
	print  PrintFunc
	cancel context.CancelFunc
	done   chan struct{}
}

// Start subscribes to the pending feed for kind and processes jobs until
// Stop is called.
func Start(queue store.Queue, kind model.JobKind, print PrintFunc) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		kind:   kind,
		queue:  queue,
		print:  print,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go w.run(ctx)
	return w
}

// Stop tears down the subscription and returns once the feed loop has
// exited. Jobs already in flight finish in the background; their status
// writes are keyed by immutable job ids and remain valid.
func (w *Watcher) Stop() {
	w.cancel()
	<-w.done
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	jobs := make(chan model.PrintJob)
	defer close(jobs)
	go func() {
		for job := range jobs {
			go w.handle(context.WithoutCancel(ctx), job)
		}
	}()

	for {
		err := w.queue.Subscribe(ctx, w.kind, jobs)
		if ctx.Err() != nil {
			return
		}
		log.Printf("[%s] feed error: %v. Reconnecting in %s...", w.tag(), err, reconnectDelay)
		select {
		case <-time.After(reconnectDelay):
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) handle(ctx context.Context, job model.PrintJob) {
	log.Printf("[%s] New print job: billId=%s", w.tag(), job.BillID)

	err := w.queue.Claim(ctx, w.kind, job.ID)
	if errors.Is(err, store.ErrAlreadyClaimed) {
		log.Printf("[%s] Job %s already claimed, skipping", w.tag(), job.ID)
		return
	}
	if err != nil {
		// The job is still pending remotely and will be re-observed on the
		// next subscription.
		log.Printf("[%s] Claim failed for job %s: %v", w.tag(), job.ID, err)
		return
	}

	if err := w.print(ctx, job.BillID); err != nil {
		if mErr := w.queue.MarkFailed(ctx, w.kind, job.ID, err.Error()); mErr != nil {
			log.Printf("[%s] Failed to record failure for job %s: %v", w.tag(), job.ID, mErr)
		}
		log.Printf("[%s] Print failed: billId=%s - %v", w.tag(), job.BillID, err)
		return
	}

	if err := w.queue.MarkPrinted(ctx, w.kind, job.ID); err != nil {
		log.Printf("[%s] Failed to record success for job %s: %v", w.tag(), job.ID, err)
		return
	}
	log.Printf("[%s] Printed: billId=%s", w.tag(), job.BillID)
}

func (w *Watcher) tag() string {
	return strings.ToUpper(string(w.kind))
}
