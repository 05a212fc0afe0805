package ports

import "github.com/conspect/conspect/internal/core/domain"

// RecipeLoader defines the interface for loading recipe manifests.
//
//go:generate mockgen -source=recipe_loader.go -destination=mocks/mock_recipe_loader.go -package=mocks
type RecipeLoader interface {
	// Load reads and validates the recipe file at the given path.
	Load(path string) (*domain.Recipe, error)

	// Discover walks up from dir to find the nearest recipe file.
	// Returns the recipe file path, or ErrRecipeNotFound.
	Discover(dir string) (string, error)
}
