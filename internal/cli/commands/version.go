package commands

import (
	"SkyVault/internal/config"
	"context"
	"fmt"
)

// Сведения о сборке; main заполняет их из -ldflags.
var (
	BuildVersion = "dev"
	BuildDate    = "unknown"
)

type versionCmd struct{}

func (versionCmd) Name() string        { return "version" }
func (versionCmd) Description() string { return "Print client version and the configured server" }
func (versionCmd) Usage() string       { return "version" }

func (versionCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	fmt.Fprintf(Out, "SkyVault CLI\nVersion: %s\nBuild date: %s\nServer: %s\n", BuildVersion, BuildDate, cfg.ServerURL)
	return nil
}

func init() {
	RegisterCmd(GroupOther, versionCmd{})
}
