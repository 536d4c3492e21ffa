package store

import (
	"bytes"

	"github.com/BurntSushi/toml"

	"github.com/MihkelHunter/mktodo/internal/todo"
)

// tomlDoc wraps the list because TOML has no top-level arrays.
type tomlDoc struct {
	Tasks []todo.Task `toml:"tasks"`
}

// NewTOMLFile stores tasks as a [[tasks]] array of tables.
func NewTOMLFile(path string) todo.Backend {
	return &textFile{path: path, codec: codec{
		name: "toml",
		encode: func(tasks []todo.Task) ([]byte, error) {
			var buf bytes.Buffer
			if err := toml.NewEncoder(&buf).Encode(tomlDoc{Tasks: tasks}); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
		decode: func(data []byte) ([]todo.Task, error) {
			var doc tomlDoc
			if _, err := toml.Decode(string(data), &doc); err != nil {
				return nil, err
			}
			return doc.Tasks, nil
		},
	}}
}
