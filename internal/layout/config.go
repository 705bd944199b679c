package layout

// Config holds the canvas geometry. The pixel values must match the
// printer raster exactly: every height below feeds both the dry-run pass
// and the paint pass.
type Config struct {
	Width        float64
	LineHeight   float64 // multiplier applied to font sizes
	SpacingAfter float64 // vertical gap after most sections
	MarginLeft   float64
	MarginRight  float64

	HeaderSize float64 // bold
	InfoSize   float64
	PageSize   float64
	TableSize  float64
	TotalSize  float64 // bold

	TableSpacingAfter float64 // gap after the table header and each row
	NamePadding       float64 // gap between the name column and its neighbour
	HRHeight          float64

	// Client table columns: name left-aligned, quantity centered, price and
	// line total right-aligned. Column widths are the gaps between these
	// offsets minus NamePadding.
	ColName  float64
	ColQty   float64
	ColPrice float64
	ColTotal float64

	// Kitchen table columns: name left-aligned, quantity right-aligned.
	KitchenColName float64
	KitchenColQty  float64

	Labels Labels
}

// Labels are the fixed strings painted on a receipt.
type Labels struct {
	Title     string
	Table     string
	Page      string
	ColName   string
	ColQty    string
	ColPrice  string
	ColTotal  string
	BillTotal string
}

// DefaultConfig returns the production geometry for 80mm paper at 203dpi
// (576 dots per line) with the Vietnamese labels.
func DefaultConfig() Config {
	return Config{
		Width:        576,
		LineHeight:   1.5,
		SpacingAfter: 10,
		MarginLeft:   0,
		MarginRight:  5,

		HeaderSize: 30,
		InfoSize:   25,
		PageSize:   25,
		TableSize:  25,
		TotalSize:  30,

		TableSpacingAfter: 5,
		NamePadding:       15,
		HRHeight:          2,

		ColName:  0,
		ColQty:   300,
		ColPrice: 430,
		ColTotal: 566,

		KitchenColName: 0,
		KitchenColQty:  566,

		Labels: Labels{
			Title:     "SALA FOOD",
			Table:     "Bàn",
			Page:      "Tờ",
			ColName:   "Tên",
			ColQty:    "SL",
			ColPrice:  "Giá",
			ColTotal:  "TT",
			BillTotal: "Tổng cộng:",
		},
	}
}

// lineWidth is the printable width between the margins.
func (c Config) lineWidth() float64 {
	return c.Width - c.MarginLeft - c.MarginRight
}

func (c Config) headerHeight() float64 { return c.HeaderSize * c.LineHeight }
func (c Config) infoHeight() float64   { return c.InfoSize * c.LineHeight }
func (c Config) pageHeight() float64   { return c.PageSize * c.LineHeight }
func (c Config) rowHeight() float64    { return c.TableSize * c.LineHeight }
func (c Config) totalHeight() float64  { return c.TotalSize * c.LineHeight }
