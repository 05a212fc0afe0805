// Package render turns domain values into text or JSON command output.
package render

import (
	"fmt"
	"strings"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"

	"github.com/conspect/conspect/internal/core/domain"
	"github.com/conspect/conspect/internal/ui/style"
)

// Format selects the output encoding.
type Format string

const (
	// FormatText renders styled human-readable output.
	FormatText Format = "text"
	// FormatJSON renders machine-readable JSON.
	FormatJSON Format = "json"
)

// jsonOptions produce stable output: sorted keys, two-space indent.
var jsonOptions = ojg.Options{Sort: true, Indent: 2}

// Renderer renders domain values in the selected format.
type Renderer struct {
	format Format
}

// New creates a renderer for the given format. Unrecognized formats fall
// back to text.
func New(format Format) *Renderer {
	if format != FormatJSON {
		format = FormatText
	}
	return &Renderer{format: format}
}

// Recipe renders the full manifest: settings, generators, requirements
// and layout.
func (r *Renderer) Recipe(rec *domain.Recipe) string {
	if r.format == FormatJSON {
		return oj.JSON(recipeDocument(rec), &jsonOptions)
	}

	var b strings.Builder

	b.WriteString(style.Header.Render("Settings") + "\n")
	if len(rec.Settings) == 0 {
		b.WriteString("  " + style.Label.Render("(none)") + "\n")
	}
	for _, s := range rec.Settings {
		b.WriteString("  " + style.Dot + " " + string(s) + "\n")
	}

	b.WriteString(style.Header.Render("Generators") + "\n")
	if len(rec.Generators) == 0 {
		b.WriteString("  " + style.Label.Render("(none)") + "\n")
	}
	for _, g := range rec.Generators {
		b.WriteString("  " + style.Dot + " " + string(g) + "\n")
	}

	b.WriteString(style.Header.Render("Requires") + "\n")
	if len(rec.Requires) == 0 {
		b.WriteString("  " + style.Label.Render("(none)") + "\n")
	}
	for _, req := range rec.Requires {
		b.WriteString("  " + style.Dot + " " + req.Name + "/" + style.Value.Render(req.Version) + "\n")
	}

	b.WriteString(r.layoutSection(rec.Layout))

	return b.String()
}

// Layout renders only the layout policy resolution.
func (r *Renderer) Layout(rec *domain.Recipe) string {
	if r.format == FormatJSON {
		return oj.JSON(layoutDocument(rec.Layout), &jsonOptions)
	}
	return r.layoutSection(rec.Layout)
}

func (r *Renderer) layoutSection(p domain.LayoutPolicy) string {
	var b strings.Builder

	b.WriteString(style.Header.Render("Layout") + "\n")
	b.WriteString("  " + style.Label.Render("kind:") + " " + string(p.Kind) + "\n")
	if p.Kind == domain.LayoutExplicit {
		b.WriteString("  " + style.Label.Render("folder:") + " " + p.Folder + "\n")
	} else {
		b.WriteString("  " + style.Label.Render("convention:") + " " + p.Convention + "\n")
	}
	b.WriteString("  " + style.Label.Render("generators dir:") + " " + p.GeneratorsDir() + "\n")

	return b.String()
}

// PackageID renders the fingerprint for the given axis values.
func (r *Renderer) PackageID(values domain.AxisValues, id string) string {
	if r.format == FormatJSON {
		doc := map[string]any{
			"package_id": id,
			"settings":   axisDocument(values),
		}
		return oj.JSON(doc, &jsonOptions)
	}

	var b strings.Builder

	b.WriteString(style.Header.Render("Package ID") + "\n")
	b.WriteString("  " + style.Value.Render(id) + "\n")
	b.WriteString(style.Header.Render("Settings") + "\n")
	for _, axis := range domain.KnownSettings {
		if value, ok := values[axis]; ok {
			b.WriteString("  " + style.Label.Render(string(axis)+":") + " " + value + "\n")
		}
	}

	return b.String()
}

// Diff renders the changes between two recipe revisions.
func (r *Renderer) Diff(d *domain.Diff) string {
	if r.format == FormatJSON {
		return oj.JSON(diffDocument(d), &jsonOptions)
	}

	if d.Empty() {
		return style.Good.Render(style.Check+" recipes are identical") + "\n"
	}

	var b strings.Builder

	for _, change := range d.Requirements {
		switch {
		case change.Added():
			b.WriteString(style.Good.Render(style.Plus+" "+change.Name+"/"+change.To) + "\n")
		case change.Removed():
			b.WriteString(style.Bad.Render(style.Minus+" "+change.Name+"/"+change.From) + "\n")
		default:
			b.WriteString(style.Caution.Render(
				"~ "+change.Name+" "+change.From+" "+style.Arrow+" "+change.To) + "\n")
		}
	}

	for _, s := range d.SettingsAdded {
		b.WriteString(style.Good.Render(style.Plus+" setting "+string(s)) + "\n")
	}
	for _, s := range d.SettingsRemoved {
		b.WriteString(style.Bad.Render(style.Minus+" setting "+string(s)) + "\n")
	}
	for _, g := range d.GeneratorsAdded {
		b.WriteString(style.Good.Render(style.Plus+" generator "+string(g)) + "\n")
	}
	for _, g := range d.GeneratorsRemoved {
		b.WriteString(style.Bad.Render(style.Minus+" generator "+string(g)) + "\n")
	}

	if d.LayoutChanged {
		b.WriteString(style.Caution.Render(fmt.Sprintf(
			"~ layout %s %s %s", describeLayout(d.LayoutFrom), style.Arrow, describeLayout(d.LayoutTo))) + "\n")
	}

	return b.String()
}

// LintResult renders the outcome of validating a recipe.
func (r *Renderer) LintResult(path string, lintErr error) string {
	if r.format == FormatJSON {
		doc := map[string]any{"path": path, "valid": lintErr == nil}
		if lintErr != nil {
			doc["error"] = lintErr.Error()
		}
		return oj.JSON(doc, &jsonOptions)
	}

	if lintErr != nil {
		return style.Bad.Render(style.Cross+" "+path+": "+lintErr.Error()) + "\n"
	}
	return style.Good.Render(style.Check+" "+path) + "\n"
}

func describeLayout(p domain.LayoutPolicy) string {
	if p.Kind == domain.LayoutExplicit {
		return string(p.Kind) + ":" + p.Folder
	}
	return string(p.Kind) + ":" + p.Convention
}
