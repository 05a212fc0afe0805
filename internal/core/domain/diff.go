package domain

import "slices"

// RequirementChange describes how a single dependency differs between two snapshots.
type RequirementChange struct {
	Name string
	// From is empty when the dependency was added, To when it was removed.
	From string
	To   string
}

// Added reports whether the dependency only exists in the newer snapshot.
func (c RequirementChange) Added() bool { return c.From == "" }

// Removed reports whether the dependency only exists in the older snapshot.
func (c RequirementChange) Removed() bool { return c.To == "" }

// Diff is the structural difference between two recipe snapshots.
// Two files with the same path but different content are two snapshots of the
// same manifest; the diff preserves their differences instead of merging them.
type Diff struct {
	Requirements      []RequirementChange
	SettingsAdded     []Setting
	SettingsRemoved   []Setting
	GeneratorsAdded   []Generator
	GeneratorsRemoved []Generator
	LayoutChanged     bool
	LayoutFrom        LayoutPolicy
	LayoutTo          LayoutPolicy
}

// Empty reports whether the two snapshots declare identical structure.
func (d *Diff) Empty() bool {
	return len(d.Requirements) == 0 &&
		len(d.SettingsAdded) == 0 && len(d.SettingsRemoved) == 0 &&
		len(d.GeneratorsAdded) == 0 && len(d.GeneratorsRemoved) == 0 &&
		!d.LayoutChanged
}

// Compare computes the difference from an older to a newer recipe snapshot.
// Requirement changes are reported in the name's first appearance order
// across both snapshots.
func Compare(from, to *Recipe) *Diff {
	d := &Diff{}

	seen := make(map[string]bool)
	order := make([]string, 0, len(from.Requires)+len(to.Requires))
	for _, req := range from.Requires {
		if !seen[req.Name] {
			seen[req.Name] = true
			order = append(order, req.Name)
		}
	}
	for _, req := range to.Requires {
		if !seen[req.Name] {
			seen[req.Name] = true
			order = append(order, req.Name)
		}
	}

	for _, name := range order {
		old, hadOld := from.Requirement(name)
		cur, hasNew := to.Requirement(name)
		switch {
		case hadOld && hasNew && old.Version != cur.Version:
			d.Requirements = append(d.Requirements, RequirementChange{Name: name, From: old.Version, To: cur.Version})
		case hadOld && !hasNew:
			d.Requirements = append(d.Requirements, RequirementChange{Name: name, From: old.Version})
		case !hadOld && hasNew:
			d.Requirements = append(d.Requirements, RequirementChange{Name: name, To: cur.Version})
		}
	}

	for _, s := range from.Settings {
		if !to.HasSetting(s) {
			d.SettingsRemoved = append(d.SettingsRemoved, s)
		}
	}
	for _, s := range to.Settings {
		if !from.HasSetting(s) {
			d.SettingsAdded = append(d.SettingsAdded, s)
		}
	}

	for _, g := range from.Generators {
		if !slices.Contains(to.Generators, g) {
			d.GeneratorsRemoved = append(d.GeneratorsRemoved, g)
		}
	}
	for _, g := range to.Generators {
		if !slices.Contains(from.Generators, g) {
			d.GeneratorsAdded = append(d.GeneratorsAdded, g)
		}
	}

	if !from.Layout.Equal(to.Layout) {
		d.LayoutChanged = true
		d.LayoutFrom = from.Layout
		d.LayoutTo = to.Layout
	}

	return d
}
