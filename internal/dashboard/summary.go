package dashboard

import (
	"strings"

	"github.com/Alias1177/SeasonOutlook/internal/display"
)

var summaryLines = []struct {
	label  string
	target string
}{
	{"Playoffs", display.PlayoffProb},
	{"Division", display.DivisionProb},
	{"Conference", display.ConferenceProb},
	{"Super Bowl", display.SuperbowlProb},
	{"Confidence", display.Confidence},
	{"Record", display.RecordText},
	{"Win %", display.WinPctText},
	{"Off rating", display.OffRating},
	{"Def rating", display.DefRating},
}

// Summary renders the text elements of a snapshot as "Label: value" lines.
// Elements that are absent or still empty are skipped.
func Summary(s display.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("Season outlook\n")
	for _, line := range summaryLines {
		text := s.Text(line.target)
		if text == "" {
			continue
		}
		sb.WriteString(line.label)
		sb.WriteString(": ")
		sb.WriteString(text)
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}
