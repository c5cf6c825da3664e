package models

// CategoryRule is one ordered entry of the classifier table: a category name
// and the keywords that map a description onto it. Rule order is significant,
// the first matching rule wins.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// RulesConfig is the YAML shape of a category rules file.
type RulesConfig struct {
	Categories []CategoryRule `yaml:"categories"`
}
