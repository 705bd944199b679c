package layout

import (
	"fmt"
	"strconv"

	"github.com/phapquanghoasen/sala-printer/internal/format"
	"github.com/phapquanghoasen/sala-printer/internal/model"
)

// clientPlan lays out the guest receipt.
func (e *Engine) clientPlan(bill *model.Bill) []section {
	cfg := e.cfg
	sections := []section{
		e.headerSection(),
		e.infoSection(bill),
		e.ruleSection(),
		{
			height: cfg.rowHeight() + cfg.TableSpacingAfter,
			paint: func(p *painter) {
				p.text(e.tableHead, cfg.Labels.ColName, cfg.ColName, 0, alignLeft)
				p.text(e.tableHead, cfg.Labels.ColQty, cfg.ColQty, 0, alignCenter)
				p.text(e.tableHead, cfg.Labels.ColPrice, cfg.ColPrice, 0, alignRight)
				p.text(e.tableHead, cfg.Labels.ColTotal, cfg.ColTotal, 0, alignRight)
			},
		},
	}

	nameWidth := cfg.ColQty - cfg.ColName - cfg.NamePadding
	for _, f := range bill.Foods {
		sections = append(sections, section{
			height: cfg.rowHeight() + cfg.TableSpacingAfter,
			paint: func(p *painter) {
				p.text(e.row, truncate(e.row, f.Name, nameWidth), cfg.ColName, 0, alignLeft)
				p.text(e.row, strconv.Itoa(f.Quantity), cfg.ColQty, 0, alignCenter)
				p.text(e.row, e.policy.Price(f.Price, false), cfg.ColPrice, 0, alignRight)
				p.text(e.row, e.policy.Price(float64(f.Quantity)*f.Price, false), cfg.ColTotal, 0, alignRight)
			},
		})
	}

	total := e.policy.Price(format.BillTotal(bill.Foods), true)
	sections = append(sections,
		section{height: cfg.SpacingAfter},
		e.ruleSection(),
		section{
			height: cfg.totalHeight() + cfg.SpacingAfter,
			paint: func(p *painter) {
				p.text(e.total, cfg.Labels.BillTotal, cfg.MarginLeft, 0, alignLeft)
				p.text(e.total, total, cfg.ColTotal, 0, alignRight)
			},
		},
	)
	return sections
}

// --- sections shared by both variants ---

func (e *Engine) headerSection() section {
	cfg := e.cfg
	return section{
		height: cfg.headerHeight() + cfg.SpacingAfter,
		paint: func(p *painter) {
			p.text(e.header, cfg.Labels.Title, cfg.Width/2, 0, alignCenter)
		},
	}
}

func (e *Engine) infoSection(bill *model.Bill) section {
	cfg := e.cfg
	info := fmt.Sprintf("%s: %s - %s", cfg.Labels.Table, bill.TableNumber, e.policy.Date(bill.CreatedAt))
	return section{
		height: cfg.infoHeight() + cfg.SpacingAfter,
		paint: func(p *painter) {
			p.text(e.info, info, cfg.Width/2, 0, alignCenter)
		},
	}
}

func (e *Engine) ruleSection() section {
	cfg := e.cfg
	return section{
		height: cfg.HRHeight + cfg.SpacingAfter,
		paint:  func(p *painter) { p.rule() },
	}
}
