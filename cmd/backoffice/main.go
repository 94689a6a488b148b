package main

import (
	"flag"
	"log"

	"main/internal/app"
	"main/internal/ops"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON config (empty=defaults)")
	flag.Parse()

	cfg, err := ops.Load(*configPath)
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	if err := app.Run(cfg, nil); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}
