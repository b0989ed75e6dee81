package display

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// HistoryDateLayout renders like an en-US short date with 2-digit hour and minute.
const HistoryDateLayout = "Jan 2, 2006, 03:04 PM"

// Percent converts a fraction to a whole percent, rounding halves up.
func Percent(p float64) int {
	x := p * 100
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return int(r)
}

// PercentText is Percent with a trailing "%".
func PercentText(p float64) string {
	return strconv.Itoa(Percent(p)) + "%"
}

// Record joins wins, losses and ties as "W-L-T".
func Record(wins, losses, ties int) string {
	return strconv.Itoa(wins) + "-" + strconv.Itoa(losses) + "-" + strconv.Itoa(ties)
}

// WinPct formats a win percentage to three decimals. Missing or zero shows ".000".
func WinPct(v *float64) string {
	if v == nil || *v == 0 || math.IsNaN(*v) {
		return ".000"
	}
	return ToFixed(*v, 3)
}

// Rating formats an offensive/defensive rating to one decimal. Missing shows "0.0".
func Rating(v *float64) string {
	if v == nil || *v == 0 || math.IsNaN(*v) {
		return "0.0"
	}
	return ToFixed(*v, 1)
}

// HistoryDate formats a prediction timestamp for a history card.
func HistoryDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "Invalid Date"
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(HistoryDateLayout)
}

// ToFixed formats v with the given number of decimals, rounding exact ties
// away from zero on the binary value (strconv rounds ties to even). Negative
// inputs keep their sign even when they round to zero.
func ToFixed(v float64, digits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', digits, 64)
	}

	neg := v < 0
	x := new(big.Float).SetPrec(256).SetFloat64(math.Abs(v))
	scale := new(big.Float).SetPrec(256).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil))
	x.Mul(x, scale)
	x.Add(x, big.NewFloat(0.5))
	n, _ := x.Int(nil)

	s := n.String()
	if digits > 0 {
		if len(s) <= digits {
			s = strings.Repeat("0", digits-len(s)+1) + s
		}
		s = s[:len(s)-digits] + "." + s[len(s)-digits:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
