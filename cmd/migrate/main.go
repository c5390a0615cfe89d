package main

import (
	"log"
	"os"

	"agenda/config"
	"agenda/helper"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: migrate <up|down|drop|step-up>")
	}

	cfg := config.Get()

	actions := map[string]func(*config.Config) error{
		"up":      helper.Up,
		"down":    helper.Down,
		"drop":    helper.Drop,
		"step-up": helper.StepUp,
	}

	action, ok := actions[os.Args[1]]
	if !ok {
		log.Fatalf("unknown action %q, use up, down, drop or step-up", os.Args[1])
	}

	if err := action(cfg); err != nil {
		log.Fatal(err)
	}
}
