package format

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/phapquanghoasen/sala-printer/internal/model"
)

// Policy describes the locale conventions used when printing money and
// dates on a receipt.
type Policy struct {
	Tag            language.Tag
	CurrencyMarker string
	DateLayout     string
}

// VND is the default policy: Vietnamese thousands grouping, the "VNĐ"
// marker, and DD/MM/YYYY - HH:MM:SS timestamps.
var VND = Policy{
	Tag:            language.Vietnamese,
	CurrencyMarker: "VNĐ",
	DateLayout:     "02/01/2006 - 15:04:05",
}

// Price renders a non-negative amount with thousands grouping. A zero
// amount renders as the empty string so a blank cell stays distinct from
// "0" on the paper. When withCurrency is set the currency marker is
// appended.
func (p Policy) Price(v float64, withCurrency bool) string {
	if v == 0 {
		return ""
	}
	s := message.NewPrinter(p.Tag).Sprintf("%d", int64(math.Round(v)))
	if withCurrency {
		return strings.TrimSpace(s + " " + p.CurrencyMarker)
	}
	return s
}

// Date renders a timestamp in the policy's layout. The zero time renders
// as the empty string.
func (p Policy) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(p.DateLayout)
}

// FormatPrice renders v under the default policy.
func FormatPrice(v float64, withCurrency bool) string {
	return VND.Price(v, withCurrency)
}

// FormatDate renders t under the default policy.
func FormatDate(t time.Time) string {
	return VND.Date(t)
}

// BillTotal sums quantity times unit price over all line items.
func BillTotal(foods []model.Food) float64 {
	var total float64
	for _, f := range foods {
		total += float64(f.Quantity) * f.Price
	}
	return total
}

// Group is one bucket produced by GroupBy.
type Group[T any] struct {
	Key   string
	Items []T
}

// GroupBy buckets items by key, preserving the first-seen order of groups
// and the item order inside each group. Items whose key is empty fall into
// the "other" group.
func GroupBy[T any](items []T, key func(T) string) []Group[T] {
	index := make(map[string]int)
	var groups []Group[T]
	for _, it := range items {
		k := key(it)
		if k == "" {
			k = "other"
		}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}
