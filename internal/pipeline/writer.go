package pipeline

import (
	"os"

	"gopkg.in/yaml.v3"
)

// WritePipeline writes a pipeline to a YAML file.
func WritePipeline(pl *Pipeline, path string) error {
	data, err := yaml.Marshal(pl)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadPipeline reads a pipeline from a YAML file.
func ReadPipeline(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pl Pipeline
	if err := yaml.Unmarshal(data, &pl); err != nil {
		return nil, err
	}

	return &pl, nil
}
