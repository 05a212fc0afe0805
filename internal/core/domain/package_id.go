package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
)

// AxisValues maps a settings axis to its concrete value on a host,
// e.g. os -> Linux, compiler -> gcc-13.
type AxisValues map[Setting]string

// GeneratePackageID creates a deterministic fingerprint for a recipe on a
// concrete platform. Only axes the recipe declares contribute; two recipes
// with the same declared axes, axis values, and pinned requirements share an
// ID, and any change to either alters it.
func GeneratePackageID(r *Recipe, values AxisValues) string {
	// Sort declared axes for deterministic ordering
	axes := make([]string, 0, len(r.Settings))
	for _, s := range r.Settings {
		axes = append(axes, string(s))
	}
	slices.Sort(axes)

	var builder strings.Builder
	for _, axis := range axes {
		builder.WriteString(axis)
		builder.WriteString(":")
		builder.WriteString(values[Setting(axis)])
		builder.WriteString(";")
	}

	// Requirements are identity-bearing in declaration order: the external
	// tool treats the list as ordered, so reordering is a different package.
	for _, req := range r.Requires {
		builder.WriteString(req.String())
		builder.WriteString(";")
	}

	hash := sha256.Sum256([]byte(builder.String()))
	return hex.EncodeToString(hash[:])
}
