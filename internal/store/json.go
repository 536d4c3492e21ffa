package store

import (
	"encoding/json"

	"github.com/MihkelHunter/mktodo/internal/todo"
)

// NewJSONFile stores tasks as a 2-space indented JSON array.
func NewJSONFile(path string) todo.Backend {
	return &textFile{path: path, codec: codec{
		name: "json",
		encode: func(tasks []todo.Task) ([]byte, error) {
			return json.MarshalIndent(tasks, "", "  ")
		},
		decode: func(data []byte) ([]todo.Task, error) {
			var tasks []todo.Task
			if err := json.Unmarshal(data, &tasks); err != nil {
				return nil, err
			}
			return tasks, nil
		},
	}}
}
