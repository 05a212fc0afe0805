package recipe

// recipeFile mirrors the YAML structure of recipe.yaml.
type recipeFile struct {
	Settings   []string   `yaml:"settings"`
	Generators []string   `yaml:"generators"`
	Requires   []string   `yaml:"requires"`
	Layout     *layoutDTO `yaml:"layout"`
}

// layoutDTO is the layout section of recipe.yaml. A recipe declares either
// an explicit folder or a standard convention, never both.
type layoutDTO struct {
	Folder     string `yaml:"folder"`
	Convention string `yaml:"convention"`
}
