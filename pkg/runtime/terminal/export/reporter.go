package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/growth-tools/goal-report/pkg/models/domain"
)

// Reporter outputs reports to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(d domain.ReportDetail) string {
			if d.Description != "" {
				return fmt.Sprintf("%-28s %s", d.Name, d.Description)
			}
			if d.Unit != "" {
				return fmt.Sprintf("%-28s %v %s", d.Name, d.Value, d.Unit)
			}
			return fmt.Sprintf("%-28s %v", d.Name, d.Value)
		},
	}

	tmpl := `{{.Title}}
Site: {{.Site}}  Page: {{.Page}}
Period: {{.Period.Start.Format "2006-01-02"}} to {{.Period.End.Format "2006-01-02"}} ({{.Period.Duration}} days, per {{.Granularity}})
Goals: {{range $i, $g := .Goals}}{{if $i}}, {{end}}{{$g}}{{end}}
{{range .Sections}}
---

{{.Title}}

{{range .Details}}{{formatRow .}}
{{end}}{{end}}
---
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
