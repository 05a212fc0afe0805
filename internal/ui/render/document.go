package render

import "github.com/conspect/conspect/internal/core/domain"

// recipeDocument builds the JSON shape for a full manifest. Only plain
// maps and slices go in so the encoder needs no reflection setup.
func recipeDocument(rec *domain.Recipe) map[string]any {
	settings := make([]any, 0, len(rec.Settings))
	for _, s := range rec.Settings {
		settings = append(settings, string(s))
	}

	generators := make([]any, 0, len(rec.Generators))
	for _, g := range rec.Generators {
		generators = append(generators, string(g))
	}

	requires := make([]any, 0, len(rec.Requires))
	for _, req := range rec.Requires {
		requires = append(requires, map[string]any{
			"name":    req.Name,
			"version": req.Version,
		})
	}

	return map[string]any{
		"path":       rec.Path,
		"settings":   settings,
		"generators": generators,
		"requires":   requires,
		"layout":     layoutDocument(rec.Layout),
	}
}

func layoutDocument(p domain.LayoutPolicy) map[string]any {
	doc := map[string]any{
		"kind":           string(p.Kind),
		"generators_dir": p.GeneratorsDir(),
	}
	if p.Kind == domain.LayoutExplicit {
		doc["folder"] = p.Folder
	} else {
		doc["convention"] = p.Convention
	}
	return doc
}

func axisDocument(values domain.AxisValues) map[string]any {
	doc := make(map[string]any, len(values))
	for axis, value := range values {
		doc[string(axis)] = value
	}
	return doc
}

func diffDocument(d *domain.Diff) map[string]any {
	requirements := make([]any, 0, len(d.Requirements))
	for _, change := range d.Requirements {
		entry := map[string]any{"name": change.Name}
		switch {
		case change.Added():
			entry["change"] = "added"
			entry["to"] = change.To
		case change.Removed():
			entry["change"] = "removed"
			entry["from"] = change.From
		default:
			entry["change"] = "updated"
			entry["from"] = change.From
			entry["to"] = change.To
		}
		requirements = append(requirements, entry)
	}

	doc := map[string]any{
		"empty":        d.Empty(),
		"requirements": requirements,
	}

	if len(d.SettingsAdded) > 0 {
		doc["settings_added"] = settingNames(d.SettingsAdded)
	}
	if len(d.SettingsRemoved) > 0 {
		doc["settings_removed"] = settingNames(d.SettingsRemoved)
	}
	if len(d.GeneratorsAdded) > 0 {
		doc["generators_added"] = generatorNames(d.GeneratorsAdded)
	}
	if len(d.GeneratorsRemoved) > 0 {
		doc["generators_removed"] = generatorNames(d.GeneratorsRemoved)
	}
	if d.LayoutChanged {
		doc["layout_from"] = layoutDocument(d.LayoutFrom)
		doc["layout_to"] = layoutDocument(d.LayoutTo)
	}

	return doc
}

func settingNames(settings []domain.Setting) []any {
	names := make([]any, 0, len(settings))
	for _, s := range settings {
		names = append(names, string(s))
	}
	return names
}

func generatorNames(generators []domain.Generator) []any {
	names := make([]any, 0, len(generators))
	for _, g := range generators {
		names = append(names, string(g))
	}
	return names
}
