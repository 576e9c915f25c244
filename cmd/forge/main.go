package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/skillforge/internal/cmd/forge"
	platformcmd "github.com/louisbranch/skillforge/internal/platform/cmd"
)

func main() {
	log.SetPrefix("forge: ")
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg forge.Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		log.Fatal(err)
	}

	err := platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceForge, func(ctx context.Context) error {
		return forge.Run(ctx, cfg, os.Args[1:], os.Stdout)
	})
	if err != nil {
		log.Fatal(err)
	}
}
