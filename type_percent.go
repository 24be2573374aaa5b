package bankroll

import "fmt"

// Percent is a percentage, 50 means half.
type Percent float64

// Ratio returns part over whole as a Percent, 0 when whole is 0.
func Ratio(part, whole int) Percent {
	if whole == 0 {
		return 0
	}
	return Percent(100 * float64(part) / float64(whole))
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}
