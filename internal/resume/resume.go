// Package resume renders a portfolio as a Markdown resume.
package resume

import (
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/rohits-web03/folio/internal/models"
)

const markdown = `# {{ or .Name .Username }}
{{- with .Profile.Tagline }}

_{{ . }}_
{{- end }}
{{- if contact . }}

{{ contact . }}
{{- end }}
{{- with .Profile.Bio }}

{{ . }}
{{- end }}
{{- if .Experiences }}

## Experience
{{ range .Experiences }}
### {{ .Position }}, {{ .Company }}
{{ period .StartDate .EndDate .IsCurrentRole }}
{{- with .Description }}

{{ . }}
{{- end }}
{{ end }}
{{- end }}
{{- if .Education }}

## Education
{{ range .Education }}
### {{ .Degree }}{{ with .FieldOfStudy }} in {{ . }}{{ end }}, {{ .Institution }}
{{ period .StartDate .EndDate .IsOngoing }}
{{- with .Description }}

{{ . }}
{{- end }}
{{ end }}
{{- end }}
{{- if .Projects }}

## Projects
{{ range .Projects }}
### {{ .Title }}
{{- with .Description }}

{{ . }}
{{- end }}
{{- if .Technologies }}

Technologies: {{ join .Technologies }}
{{- end }}
{{- with .Link }}

Live: {{ . }}
{{- end }}
{{- with .GithubLink }}

Source: {{ . }}
{{- end }}
{{ end }}
{{- end }}
{{- if .Skills }}

## Skills
{{ range .Skills }}
- {{ .Name }} ({{ level .Level }})
{{- end }}
{{- end }}
{{- if .Profile.Languages }}

## Languages

{{ join .Profile.Languages }}
{{- end }}
{{- if or .Links .Socials }}

## Links
{{ range .Socials }}
- {{ or .Label .Platform }}: {{ .URL }}
{{- end }}
{{- range .Links }}
- {{ .Label }}: {{ .URL }}
{{- end }}
{{- end }}
`

var tmpl = template.Must(template.New("resume").Funcs(template.FuncMap{
	"join":    func(items []string) string { return strings.Join(items, ", ") },
	"period":  period,
	"contact": contact,
	"level": func(l models.SkillLevel) string {
		s := strings.ToLower(string(l))
		if s == "" {
			return ""
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}).Parse(markdown))

// Markdown writes p as a Markdown resume.
func Markdown(w io.Writer, p models.Portfolio) error {
	return tmpl.Execute(w, p)
}

func period(start time.Time, end *time.Time, current bool) string {
	from := start.Format("Jan 2006")
	switch {
	case current:
		return from + " - Present"
	case end != nil:
		return from + " - " + end.Format("Jan 2006")
	}
	return from
}

func contact(p models.Portfolio) string {
	var parts []string
	for _, s := range []string{p.Email, p.Profile.PhoneNumber, p.Profile.Address} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " | ")
}
