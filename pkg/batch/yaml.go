package batch

// yamlRange maps the range fields of a corpus item.
type yamlRange struct {
	Start  int `yaml:"start"`
	Length int `yaml:"length"`
}

// yamlItem is the intermediate struct for parsing one corpus entry.
type yamlItem struct {
	Name    string     `yaml:"name"`
	Content string     `yaml:"content"`
	Range   *yamlRange `yaml:"range,omitempty"`
}

// yamlCorpus represents the top-level structure of a corpus YAML file: an
// "items" array at the top level.
type yamlCorpus struct {
	Items []yamlItem `yaml:"items"`
}
