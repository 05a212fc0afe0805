// Package recipe provides the YAML recipe manifest loader for conspect.
package recipe

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/conspect/conspect/internal/core/domain"
	"github.com/conspect/conspect/internal/core/ports"
)

// Loader implements ports.RecipeLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Discover walks up from dir and returns the path of the nearest recipe
// file. The walk stops at the filesystem root.
func (l *Loader) Discover(dir string) (string, error) {
	currentDir := dir

	for {
		candidate := filepath.Join(currentDir, domain.RecipeFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", domain.Tag(domain.ErrRecipeNotFound, "dir", dir)
}

// Load reads the recipe file at path and returns the validated manifest.
// Loading the same file twice yields equal recipes; the loader keeps no
// state between calls.
func (l *Loader) Load(path string) (*domain.Recipe, error) {
	var file recipeFile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, err
	}

	settings, err := buildSettings(file.Settings)
	if err != nil {
		return nil, err
	}

	generators, err := buildGenerators(file.Generators)
	if err != nil {
		return nil, err
	}

	requires, err := buildRequirements(file.Requires)
	if err != nil {
		return nil, err
	}

	layout, err := buildLayout(file.Layout)
	if err != nil {
		return nil, err
	}

	if len(settings) == 0 {
		l.Logger.Warn("recipe declares no settings axes; the package id varies only by requirements")
	}

	return &domain.Recipe{
		Path:       path,
		Settings:   settings,
		Generators: generators,
		Requires:   requires,
		Layout:     layout,
	}, nil
}

func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path comes from discovery or an explicit flag
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(domain.ErrRecipeReadFailed, err)
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return errors.Join(domain.ErrRecipeParseFailed, parseErr)
	}

	return nil
}

// buildSettings validates the declared axes against the recognized set and
// rejects duplicates. Declaration order is preserved.
func buildSettings(raw []string) ([]domain.Setting, error) {
	settings := make([]domain.Setting, 0, len(raw))
	seen := make(map[domain.Setting]bool, len(raw))

	for _, name := range raw {
		s := domain.Setting(name)
		if !domain.ValidSetting(s) {
			return nil, domain.Tag(domain.ErrUnknownSetting, "axis", name)
		}
		if seen[s] {
			return nil, domain.Tag(domain.ErrDuplicateSetting, "axis", name)
		}
		seen[s] = true
		settings = append(settings, s)
	}

	return settings, nil
}

func buildGenerators(raw []string) ([]domain.Generator, error) {
	generators := make([]domain.Generator, 0, len(raw))
	seen := make(map[domain.Generator]bool, len(raw))

	for _, name := range raw {
		g := domain.Generator(name)
		if !domain.ValidGenerator(g) {
			return nil, domain.Tag(domain.ErrUnknownGenerator, "generator", name)
		}
		if seen[g] {
			return nil, domain.Tag(domain.ErrDuplicateGenerator, "generator", name)
		}
		seen[g] = true
		generators = append(generators, g)
	}

	return generators, nil
}

// buildRequirements parses the declared name/version pins. Names must be
// unique within the list; declaration order is preserved.
func buildRequirements(raw []string) ([]domain.Requirement, error) {
	requires := make([]domain.Requirement, 0, len(raw))
	seen := make(map[string]bool, len(raw))

	for _, entry := range raw {
		req, err := domain.ParseRequirement(entry)
		if err != nil {
			return nil, err
		}
		if seen[req.Name] {
			return nil, domain.Tag(domain.ErrDuplicateRequirement, "name", req.Name)
		}
		seen[req.Name] = true
		requires = append(requires, req)
	}

	return requires, nil
}

// buildLayout resolves the layout section into a policy. A missing or empty
// section falls back to the standard cmake convention.
func buildLayout(dto *layoutDTO) (domain.LayoutPolicy, error) {
	if dto == nil || (dto.Folder == "" && dto.Convention == "") {
		return domain.DefaultLayout(), nil
	}

	if dto.Folder != "" && dto.Convention != "" {
		err := domain.Tag(domain.ErrConflictingLayout, "folder", dto.Folder)
		return domain.LayoutPolicy{}, zerr.With(err, "convention", dto.Convention)
	}

	if dto.Folder != "" {
		if err := validateFolder(dto.Folder); err != nil {
			return domain.LayoutPolicy{}, err
		}
		return domain.LayoutPolicy{
			Kind:   domain.LayoutExplicit,
			Folder: filepath.Clean(dto.Folder),
		}, nil
	}

	if dto.Convention != domain.ConventionCMake {
		return domain.LayoutPolicy{}, domain.Tag(domain.ErrUnknownLayoutConvention, "convention", dto.Convention)
	}

	return domain.LayoutPolicy{
		Kind:       domain.LayoutStandard,
		Convention: dto.Convention,
	}, nil
}

// validateFolder rejects explicit folders that would escape the recipe
// directory: absolute paths and paths that climb above the root.
func validateFolder(folder string) error {
	if filepath.IsAbs(folder) {
		return domain.Tag(domain.ErrInvalidLayoutFolder, "folder", folder)
	}

	clean := filepath.Clean(folder)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return domain.Tag(domain.ErrInvalidLayoutFolder, "folder", folder)
	}

	return nil
}
