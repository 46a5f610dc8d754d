package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"SkyVault/internal/cli/commands"
	"SkyVault/internal/config"
)

// задаются при сборке: -ldflags "-X main.version=... -X main.buildDate=..."
var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// единый конфиг сервера и клиента; ServerURL собирается из BASE_URL/ENABLE_HTTPS
	cfg := config.NewConfig()
	commands.BuildVersion, commands.BuildDate = version, buildDate

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Dispatch(ctx, cfg, flag.Args())
	stop()
	os.Exit(code)
}
