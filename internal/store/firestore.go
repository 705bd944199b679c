package store

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/phapquanghoasen/sala-printer/internal/model"
)

const (
	usersCollection = "users"
	billsCollection = "bills"
	clientQueue     = "printClientBills"
	kitchenQueue    = "printKitchenBills"
)

// Firestore implements Documents and Queue on Cloud Firestore.
type Firestore struct {
	client *firestore.Client
	uid    string
}

// NewFirestore wraps an authenticated client. uid is the signed-in user's
// document id, supplied by the login flow that owns this process.
func NewFirestore(client *firestore.Client, uid string) *Firestore {
	return &Firestore{client: client, uid: uid}
}

func queueCollection(kind model.JobKind) string {
	if kind == model.JobKitchen {
		return kitchenQueue
	}
	return clientQueue
}

func (s *Firestore) UserData(ctx context.Context) (*model.User, error) {
	if s.uid == "" {
		return nil, errors.New("no signed-in user")
	}
	snap, err := s.client.Collection(usersCollection).Doc(s.uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, &NotFoundError{Kind: "user", ID: s.uid}
	}
	if err != nil {
		return nil, err
	}
	var u model.User
	if err := snap.DataTo(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Firestore) BillData(ctx context.Context, billID string) (*model.Bill, error) {
	snap, err := s.client.Collection(billsCollection).Doc(billID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, &NotFoundError{Kind: "bill", ID: billID}
	}
	if err != nil {
		return nil, err
	}
	var b model.Bill
	if err := snap.DataTo(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Subscribe listens on the server-side pending filter and forwards each
// document that newly enters the view. A document that cannot be decoded
// is still forwarded with only its id set, so the pipeline records the
// failure on the job instead of silently dropping it.
func (s *Firestore) Subscribe(ctx context.Context, kind model.JobKind, jobs chan<- model.PrintJob) error {
	query := s.client.Collection(queueCollection(kind)).
		Where("status", "==", string(model.StatusPending))
	it := query.Snapshots(ctx)
	defer it.Stop()

	for {
		snap, err := it.Next()
		if err != nil {
			return err
		}
		for _, change := range snap.Changes {
			if change.Kind != firestore.DocumentAdded {
				continue
			}
			var job model.PrintJob
			_ = change.Doc.DataTo(&job)
			job.ID = change.Doc.Ref.ID
			select {
			case jobs <- job:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Claim moves a job from pending to printing inside a transaction. If the
// document already left pending, another watcher owns it.
func (s *Firestore) Claim(ctx context.Context, kind model.JobKind, jobID string) error {
	ref := s.client.Collection(queueCollection(kind)).Doc(jobID)
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return err
		}
		st, err := snap.DataAt("status")
		if err != nil {
			return err
		}
		if st != string(model.StatusPending) {
			return ErrAlreadyClaimed
		}
		return tx.Update(ref, []firestore.Update{
			{Path: "status", Value: string(model.StatusPrinting)},
		})
	})
}

func (s *Firestore) MarkPrinted(ctx context.Context, kind model.JobKind, jobID string) error {
	ref := s.client.Collection(queueCollection(kind)).Doc(jobID)
	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "status", Value: string(model.StatusSuccess)},
		{Path: "printedAt", Value: firestore.ServerTimestamp},
	})
	return err
}

func (s *Firestore) MarkFailed(ctx context.Context, kind model.JobKind, jobID, msg string) error {
	ref := s.client.Collection(queueCollection(kind)).Doc(jobID)
	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "status", Value: string(model.StatusFailed)},
		{Path: "error", Value: msg},
		{Path: "failedAt", Value: firestore.ServerTimestamp},
	})
	return err
}
