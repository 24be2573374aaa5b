package renderer

import (
	"fmt"
	"text/template"
	"time"

	"github.com/etnz/bankroll"
	"github.com/shopspring/decimal"
)

var funcs = template.FuncMap{
	"hours": formatHours,
}

// formatHours formats a number of hours as "2h30".
func formatHours(h float64) string {
	d := time.Duration(h * float64(time.Hour)).Round(time.Minute)
	return fmt.Sprintf("%dh%02d", int(d.Hours()), int(d.Minutes())%60)
}

func amount(d decimal.Decimal, cur string) string {
	return bankroll.M(d, cur).String()
}

func signed(d decimal.Decimal, cur string) string {
	return bankroll.M(d, cur).SignedString()
}

func number(d decimal.Decimal) string {
	return d.StringFixed(2)
}
