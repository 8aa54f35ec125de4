// Package report renders a finished simulation as text.
package report

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/page"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

const faultLinePrefix = "Percentage of page faults: "

// Source is what the reporter needs from a simulation run.
type Source interface {
	Snapshots() [][]util.PageID
	Faults() int
	Accesses() int
}

// Percentage returns faults/total*100 rounded half-up to two places.
func Percentage(faults, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(faults)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(total)), 2)
}

// Render writes one line per snapshot, a blank line and the fault percentage.
func Render(src Source) string {
	var sb strings.Builder
	for i, snap := range src.Snapshots() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(page.Join(snap))
	}
	sb.WriteString("\n\n")
	sb.WriteString(faultLinePrefix)
	sb.WriteString(Percentage(src.Faults(), src.Accesses()).StringFixed(2))
	sb.WriteByte('\n')
	return sb.String()
}
