package layout

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phapquanghoasen/sala-printer/internal/format"
	"github.com/phapquanghoasen/sala-printer/internal/model"
)

// Engine renders bills onto fixed-width canvases ready for raster
// encoding. It is safe for concurrent use: rendering allocates a fresh
// drawing context per call and the faces are read-only after construction.
type Engine struct {
	cfg    Config
	policy format.Policy

	regular *ggtext.FontSource
	bold    *ggtext.FontSource

	header    ggtext.Face // bold, HeaderSize
	info      ggtext.Face // regular, InfoSize
	page      ggtext.Face // regular, PageSize
	tableHead ggtext.Face // bold, TableSize
	row       ggtext.Face // regular, TableSize
	total     ggtext.Face // bold, TotalSize
}

// NewEngine builds an engine from the embedded Go fonts.
func NewEngine(cfg Config, policy format.Policy) (*Engine, error) {
	regular, err := ggtext.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing regular font: %w", err)
	}
	bold, err := ggtext.NewFontSource(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing bold font: %w", err)
	}
	return &Engine{
		cfg:       cfg,
		policy:    policy,
		regular:   regular,
		bold:      bold,
		header:    bold.Face(cfg.HeaderSize),
		info:      regular.Face(cfg.InfoSize),
		page:      regular.Face(cfg.PageSize),
		tableHead: bold.Face(cfg.TableSize),
		row:       regular.Face(cfg.TableSize),
		total:     bold.Face(cfg.TotalSize),
	}, nil
}

// RenderClient paints the guest receipt: header, info line, 4-column table
// and a bold total line.
func (e *Engine) RenderClient(bill *model.Bill) (image.Image, error) {
	return e.render(e.clientPlan(bill))
}

// RenderKitchen paints one prep ticket: header, info line, page line,
// optional note block and a 2-column table without prices.
func (e *Engine) RenderKitchen(bill *model.Bill) (image.Image, error) {
	return e.render(e.kitchenPlan(bill))
}

// section is one vertical slice of the canvas. Its height includes the
// configured post-section spacing; the dry-run pass sums heights and the
// paint pass replays the same slice list, so the two cannot disagree.
type section struct {
	height float64
	paint  func(p *painter)
}

func planHeight(sections []section) float64 {
	var h float64
	for _, s := range sections {
		h += s.height
	}
	return h
}

// render allocates a canvas for the plan's rounded height and replays the
// paint instructions top to bottom.
func (e *Engine) render(sections []section) (image.Image, error) {
	// The raster command transmits 8 pixel rows per byte column.
	height := int(math.Ceil(planHeight(sections)/8) * 8)

	dc := gg.NewContext(int(e.cfg.Width), height)
	defer dc.Close()
	dc.ClearWithColor(gg.White)
	dc.SetRGB(0, 0, 0)

	p := &painter{dc: dc, cfg: e.cfg}
	for _, s := range sections {
		if s.paint != nil {
			s.paint(p)
		}
		p.y += s.height
	}
	if p.err != nil {
		return nil, p.err
	}
	return dc.Image(), nil
}

// painter carries the drawing context and the paint cursor through a plan.
type painter struct {
	dc  *gg.Context
	cfg Config
	y   float64
	err error
}

const (
	alignLeft   = 0.0
	alignCenter = 0.5
	alignRight  = 1.0
)

// text draws s top-aligned at the vertical offset dy below the section
// start, anchored horizontally at x.
func (p *painter) text(face ggtext.Face, s string, x, dy, align float64) {
	if s == "" {
		return
	}
	p.dc.SetFont(face)
	baseline := p.y + dy + face.Metrics().Ascent
	p.dc.DrawString(s, x-face.Advance(s)*align, baseline)
}

// rule draws a full-width horizontal rule at the section start.
func (p *painter) rule() {
	p.dc.DrawRectangle(p.cfg.MarginLeft, p.y, p.cfg.lineWidth(), p.cfg.HRHeight)
	if err := p.dc.Fill(); err != nil && p.err == nil {
		p.err = err
	}
}
