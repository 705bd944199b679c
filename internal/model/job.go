package model

import "time"

// JobKind selects which printer a job is destined for.
type JobKind string

const (
	JobClient  JobKind = "client"
	JobKitchen JobKind = "kitchen"
)

// JobStatus is the lifecycle field of a queued print job. Status is the
// sole concurrency guard: a job is claimed by moving it from pending to
// printing, and terminated with success or failed.
type JobStatus string

const (
	StatusPending  JobStatus = "pending"
	StatusPrinting JobStatus = "printing"
	StatusSuccess  JobStatus = "success"
	StatusFailed   JobStatus = "failed"
)

// PrintJob is one queued print request. Jobs are created externally in
// pending state; the agent only ever updates individual fields.
type PrintJob struct {
	ID        string    `firestore:"-"`
	BillID    string    `firestore:"billId"`
	Status    JobStatus `firestore:"status"`
	Error     string    `firestore:"error"`
	CreatedAt time.Time `firestore:"createdAt"`
	PrintedAt time.Time `firestore:"printedAt"`
	FailedAt  time.Time `firestore:"failedAt"`
}
