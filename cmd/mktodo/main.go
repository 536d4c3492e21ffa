package main

import (
	"log"
	"os"

	"github.com/MihkelHunter/mktodo/internal/cli"
	"github.com/MihkelHunter/mktodo/internal/config"
	"github.com/MihkelHunter/mktodo/internal/console"
	"github.com/MihkelHunter/mktodo/internal/store"
	"github.com/MihkelHunter/mktodo/internal/todo"
)

func main() {
	console.EnableUTF8()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Opening a backend does not read the file; Load does.
	backend, err := store.Open(cfg.File)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	s := todo.NewStore(backend)
	defer s.Close()

	m := cli.New(s, os.Stdin, os.Stdout)
	m.Welcome()
	m.Load()
	if err := m.Run(); err != nil {
		log.Printf("input: %v", err)
	}
}
