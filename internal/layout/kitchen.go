package layout

import (
	"fmt"
	"strconv"

	"github.com/phapquanghoasen/sala-printer/internal/model"
)

// kitchenPlan lays out one prep ticket. Kitchen tickets never show money;
// the bill's Page/PageCount identify the sheet within a grouped print run.
func (e *Engine) kitchenPlan(bill *model.Bill) []section {
	cfg := e.cfg
	pageInfo := fmt.Sprintf("%s: %d / %d", cfg.Labels.Page, bill.Page, bill.PageCount)
	sections := []section{
		e.headerSection(),
		e.infoSection(bill),
		{
			height: cfg.pageHeight() + cfg.SpacingAfter,
			paint: func(p *painter) {
				p.text(e.page, pageInfo, cfg.Width/2, 0, alignCenter)
			},
		},
	}

	if lines := wrapText(e.info, bill.Note, cfg.lineWidth()); len(lines) > 0 {
		sections = append(sections, section{
			height: float64(len(lines))*cfg.infoHeight() + cfg.SpacingAfter,
			paint: func(p *painter) {
				for i, line := range lines {
					p.text(e.info, line, cfg.MarginLeft, float64(i)*cfg.infoHeight(), alignLeft)
				}
			},
		})
	}

	sections = append(sections,
		e.ruleSection(),
		section{
			height: cfg.rowHeight() + cfg.TableSpacingAfter,
			paint: func(p *painter) {
				p.text(e.tableHead, cfg.Labels.ColName, cfg.KitchenColName, 0, alignLeft)
				p.text(e.tableHead, cfg.Labels.ColQty, cfg.KitchenColQty, 0, alignRight)
			},
		},
	)

	nameWidth := cfg.KitchenColQty - cfg.KitchenColName - cfg.NamePadding
	for _, f := range bill.Foods {
		sections = append(sections, section{
			height: cfg.rowHeight() + cfg.TableSpacingAfter,
			paint: func(p *painter) {
				p.text(e.row, truncate(e.row, f.Name, nameWidth), cfg.KitchenColName, 0, alignLeft)
				p.text(e.row, strconv.Itoa(f.Quantity), cfg.KitchenColQty, 0, alignRight)
			},
		})
	}

	sections = append(sections,
		section{height: cfg.SpacingAfter},
		e.ruleSection(),
	)
	return sections
}
