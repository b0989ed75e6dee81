package server

import (
	"html/template"
	"strconv"

	"github.com/Alias1177/SeasonOutlook/internal/display"
)

type pageData struct {
	Surface display.Snapshot
	Source  string
}

var pageFuncs = template.FuncMap{
	"text": func(s display.Snapshot, id string) string {
		return s.Text(id)
	},
	"width": func(s display.Snapshot, id string) template.CSS {
		w, ok := s.Width(id)
		if !ok {
			return "width: 0%"
		}
		return template.CSS("width: " + strconv.Itoa(w) + "%")
	},
	"has": func(s display.Snapshot, id string) bool {
		if id == display.GenerateBtn {
			return s.Trigger != nil
		}
		_, ok := s.Elements[id]
		return ok
	},
}

var pageTmpl = template.Must(template.New("page").Funcs(pageFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    {{- with .Surface.Trigger}}{{if not .Enabled}}
    <meta http-equiv="refresh" content="2;url=/view">{{end}}{{end}}
    <title>Season Outlook</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #0f172a; color: #f1f5f9; margin: 0; }
        .container { max-width: 1100px; margin: 0 auto; padding: 24px; }
        .card { background: #1e293b; border: 1px solid #334155; border-radius: 8px; padding: 20px; margin-bottom: 24px; }
        .prob-row { margin: 12px 0; }
        .prob-track { background: #334155; height: 10px; border-radius: 5px; overflow: hidden; }
        .prob-bar { background: #3b82f6; height: 100%; transition: width 0.6s ease; }
        .stats { display: grid; grid-template-columns: repeat(4, 1fr); gap: 12px; }
        .history-item { border-top: 1px solid #334155; padding: 12px 0; }
        .history-predictions { display: flex; gap: 24px; }
        .history-pred-label, .loading, .source { color: #94a3b8; font-size: 12px; }
        button { background: #10b981; color: #0f172a; border: 0; padding: 12px 20px; font-weight: 600; border-radius: 4px; }
        button:disabled { opacity: 0.6; }
    </style>
</head>
<body>
<div class="container">
    <section class="card" id="prediction">
        <h2>Season outlook</h2>
        {{- $s := .Surface}}
        {{- range $row := .Rows}}
        <div class="prob-row">
            <span>{{$row.Label}}</span> <strong id="{{$row.Text}}">{{text $s $row.Text}}</strong>
            {{- if has $s $row.Bar}}
            <div class="prob-track"><div class="prob-bar" id="{{$row.Bar}}" style="{{width $s $row.Bar}}"></div></div>
            {{- end}}
        </div>
        {{- end}}
        <div>Confidence <strong id="confidence">{{text $s "confidence"}}</strong></div>
        {{- if has $s "generate-btn"}}
        <form method="post" action="/generate">
            <button id="generate-btn" type="submit"{{if not $s.Trigger.Enabled}} disabled{{end}}>{{$s.Trigger.Label}}</button>
        </form>
        {{- end}}
    </section>
    <section class="card stats" id="stats">
        <div>Record<br><strong id="record">{{text $s "record"}}</strong></div>
        <div>Win %<br><strong id="win-pct">{{text $s "win-pct"}}</strong></div>
        <div>Offense<br><strong id="off-rating">{{text $s "off-rating"}}</strong></div>
        <div>Defense<br><strong id="def-rating">{{text $s "def-rating"}}</strong></div>
    </section>
    <section class="card" id="history">
        <h2>Prediction history</h2>
        <div id="history-list">{{$s.HTML "history-list"}}</div>
    </section>
    {{- if .Source}}
    <div class="source">data: {{.Source}}</div>
    {{- end}}
</div>
</body>
</html>
`))

type probRow struct {
	Label string
	Text  string
	Bar   string
}

var probRows = []probRow{
	{"Playoffs", display.PlayoffProb, display.PlayoffBar},
	{"Division", display.DivisionProb, display.DivisionBar},
	{"Conference", display.ConferenceProb, display.ConferenceBar},
	{"Super Bowl", display.SuperbowlProb, display.SuperbowlBar},
}

// Rows is used by the page template.
func (pageData) Rows() []probRow {
	return probRows
}
