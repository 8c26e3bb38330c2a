package seedfile

// File is the top-level structure of the optional seed links YAML file.
type File struct {
	Links []LinkProps `yaml:"links"`
}

// LinkProps describes one seeded link.
type LinkProps struct {
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	Description string `yaml:"description,omitempty"`
	Type        string `yaml:"type,omitempty"`
	Icon        string `yaml:"icon,omitempty"`
}
