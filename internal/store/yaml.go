package store

import (
	yaml "gopkg.in/yaml.v3"

	"github.com/MihkelHunter/mktodo/internal/todo"
)

// NewYAMLFile stores tasks as a YAML sequence with the JSON field names.
func NewYAMLFile(path string) todo.Backend {
	return &textFile{path: path, codec: codec{
		name:   "yaml",
		encode: func(tasks []todo.Task) ([]byte, error) { return yaml.Marshal(tasks) },
		decode: func(data []byte) ([]todo.Task, error) {
			var tasks []todo.Task
			if err := yaml.Unmarshal(data, &tasks); err != nil {
				return nil, err
			}
			return tasks, nil
		},
	}}
}
