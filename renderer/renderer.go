// Package renderer turns bankroll reports into markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates = mustSub(templatesFS, "templates")

func mustSub(f fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(f, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// RenderStats renders the Stats struct to a markdown string.
func RenderStats(s *Stats) string {
	partials := map[string]string{
		"stats_title":   "stats_title.md",
		"stats_results": "stats_results.md",
		"stats_play":    "stats_play.md",
	}
	// An empty file name results in an empty template.
	if s.BigBlinds {
		partials["stats_blinds"] = "stats_blinds.md"
	} else {
		partials["stats_blinds"] = ""
	}
	return renderTemplate("stats", "stats.md", partials, s)
}

// RenderPlatforms renders the Platforms struct to a markdown string.
func RenderPlatforms(p *Platforms) string {
	partials := map[string]string{
		"platforms_table":  "platforms_table.md",
		"platforms_totals": "platforms_totals.md",
	}
	return renderTemplate("platforms", "platforms.md", partials, p)
}

// RenderSessions renders the Sessions struct to a markdown string.
func RenderSessions(s *Sessions) string {
	partials := map[string]string{
		"sessions_table": "sessions_table.md",
	}
	return renderTemplate("sessions", "sessions.md", partials, s)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
