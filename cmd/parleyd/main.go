package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/fx"

	"github.com/matheus3301/parley/internal/config"
	"github.com/matheus3301/parley/internal/daemon"
)

func main() {
	configFlag := flag.String("config", "", "config file path (default ~/.parley/config.toml)")
	instanceFlag := flag.String("instance", "", "instance name (overrides config)")
	flag.Parse()

	cfg, err := config.Resolve(*configFlag, *instanceFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	app := fx.New(
		daemon.Module(cfg),
		daemon.Logger(),
	)

	app.Run()
}
