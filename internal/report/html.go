package report

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/purnamedha/riskscan/internal/catalog"
	"github.com/purnamedha/riskscan/internal/scan"
)

var htmlTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"join":   func(codes []string) string { return strings.Join(codes, " · ") },
	"marker": severityMarker,
	"lower":  strings.ToLower,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>AI Risk Scanner</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 0; background: #0f1419; color: #e6e6e6; }
  header { padding: 24px 32px; border-bottom: 1px solid #263038; }
  header h1 { margin: 0 0 4px; font-size: 22px; }
  header .meta { color: #8899a6; font-size: 13px; }
  .cards { display: flex; gap: 16px; padding: 24px 32px; flex-wrap: wrap; }
  .card { background: #161f27; border: 1px solid #263038; border-radius: 8px; padding: 16px 24px; min-width: 120px; }
  .card .num { font-size: 28px; font-weight: 700; }
  .card .label { color: #8899a6; font-size: 12px; text-transform: uppercase; }
  .card.critical .num { color: #f4212e; }
  .card.high .num { color: #ff7a00; }
  .card.medium .num { color: #ffd400; }
  .card.low .num { color: #00ba7c; }
  table { width: calc(100% - 64px); margin: 0 32px 32px; border-collapse: collapse; font-size: 14px; }
  th, td { text-align: left; padding: 10px 12px; border-bottom: 1px solid #263038; vertical-align: top; }
  th { color: #8899a6; font-size: 12px; text-transform: uppercase; }
  td a { color: #1d9bf0; text-decoration: none; }
  .angle { color: #8899a6; font-size: 13px; }
  .tags { white-space: nowrap; color: #8899a6; }
</style>
</head>
<body>
<header>
  <h1>AI Risk Scanner</h1>
  <div class="meta">{{.Result.ScanDate}} · last {{.Result.Days}} days · {{.Result.Total}} events · scan {{.Result.ScanID}}</div>
</header>
<div class="cards">
{{range .Severities}}  <div class="card {{lower .Code}}"><div class="num">{{.Count}}</div><div class="label">{{.Code}}</div></div>
{{end}}</div>
<table>
<tr><th></th><th>Title</th><th>Source</th><th>Date</th><th>Industry</th><th>Layers</th><th>Metrics</th></tr>
{{range .Result.Documents}}<tr>
  <td>{{marker .Severity}}</td>
  <td>{{if .URL}}<a href="{{.URL}}">{{.Title}}</a>{{else}}{{.Title}}{{end}}<div class="angle">{{.AuditAngle}}</div></td>
  <td>{{.Source}}</td>
  <td>{{.Published}}</td>
  <td>{{.Industry}}</td>
  <td class="tags">{{join .Layers}}</td>
  <td class="tags">{{join .Metrics}}</td>
</tr>
{{end}}</table>
</body>
</html>
`))

type htmlData struct {
	Result     *scan.Result
	Severities []scan.CategoryCount
}

// HTML renders a self-contained dashboard page.
func HTML(cat *catalog.Catalog, res *scan.Result) (string, error) {
	data := htmlData{Result: res}
	for _, sev := range catalog.Severities {
		data.Severities = append(data.Severities, scan.CategoryCount{Code: sev, Count: res.SeverityCounts[sev]})
	}

	var b strings.Builder
	if err := htmlTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render dashboard: %w", err)
	}
	return b.String(), nil
}
