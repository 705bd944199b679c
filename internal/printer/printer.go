// Package printer orchestrates one print attempt: resolve the user and
// bill documents, pick the device endpoint, render, encode and deliver.
package printer

import (
	"context"
	"time"

	"github.com/phapquanghoasen/sala-printer/internal/escpos"
	"github.com/phapquanghoasen/sala-printer/internal/format"
	"github.com/phapquanghoasen/sala-printer/internal/layout"
	"github.com/phapquanghoasen/sala-printer/internal/model"
	"github.com/phapquanghoasen/sala-printer/internal/store"
	"github.com/phapquanghoasen/sala-printer/internal/transport"
)

// feedLines is the blank feed before each cut so the image clears the
// tear bar.
const feedLines = 3

// SendFunc delivers an encoded buffer to a printer endpoint.
type SendFunc func(buf []byte, ip string, port int, timeout time.Duration) error

// Printer drives bills through layout, encoding and delivery. Errors are
// propagated unmodified to the caller, which owns the job status.
type Printer struct {
	docs    store.Documents
	engine  *layout.Engine
	send    SendFunc
	timeout time.Duration
}

type Option func(*Printer)

// WithSend replaces the TCP transport, mainly for tests.
func WithSend(send SendFunc) Option {
	return func(p *Printer) { p.send = send }
}

// WithTimeout bounds each delivery attempt.
func WithTimeout(d time.Duration) Option {
	return func(p *Printer) { p.timeout = d }
}

func New(docs store.Documents, engine *layout.Engine, opts ...Option) *Printer {
	p := &Printer{
		docs:    docs,
		engine:  engine,
		send:    transport.Send,
		timeout: transport.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PrintClient renders the guest receipt for billID and delivers it to the
// guest-facing printer.
func (p *Printer) PrintClient(ctx context.Context, billID string) error {
	user, bill, err := p.lookup(ctx, billID)
	if err != nil {
		return err
	}

	img, err := p.engine.RenderClient(bill)
	if err != nil {
		return err
	}

	enc := escpos.NewEncoder()
	enc.Initialize()
	enc.Image(img, escpos.DefaultThreshold)
	p.finishPage(enc)

	ep := user.PrinterEndpoint(model.JobClient)
	return p.send(enc.Encode(), ep.IP, ep.Port, p.timeout)
}

// PrintKitchen splits the bill's line items into per-category groups and
// renders one ticket page per group. All pages are concatenated into a
// single buffer, each ending in a cut, so one physical print run yields
// one torn ticket per category.
func (p *Printer) PrintKitchen(ctx context.Context, billID string) error {
	user, bill, err := p.lookup(ctx, billID)
	if err != nil {
		return err
	}

	groups := format.GroupBy(bill.Foods, func(f model.Food) string { return f.Type })

	enc := escpos.NewEncoder()
	enc.Initialize()
	for i, g := range groups {
		page := *bill
		page.Foods = g.Items
		page.Page = i + 1
		page.PageCount = len(groups)

		img, err := p.engine.RenderKitchen(&page)
		if err != nil {
			return err
		}
		enc.Image(img, escpos.DefaultThreshold)
		p.finishPage(enc)
	}

	ep := user.PrinterEndpoint(model.JobKitchen)
	return p.send(enc.Encode(), ep.IP, ep.Port, p.timeout)
}

func (p *Printer) lookup(ctx context.Context, billID string) (*model.User, *model.Bill, error) {
	user, err := p.docs.UserData(ctx)
	if err != nil {
		return nil, nil, err
	}
	bill, err := p.docs.BillData(ctx, billID)
	if err != nil {
		return nil, nil, err
	}
	return user, bill, nil
}

func (p *Printer) finishPage(enc *escpos.Encoder) {
	for i := 0; i < feedLines; i++ {
		enc.Newline()
	}
	enc.Cut()
}
