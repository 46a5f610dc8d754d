package commands

import (
	"SkyVault/internal/cli/api"
	"SkyVault/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Коды завершения процесса.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitAuth        = 3
	ExitInterrupted = 130
)

// Dispatch is the single entry point to execute CLI commands.
// It prints help and usage messages and returns a process exit code.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	name := strings.ToLower(args[0])
	switch name {
	case "-h", "--help":
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitOK
	case "help": // skyvault help [command]
		if len(args) == 1 {
			fmt.Fprint(Out, FormatGlobalUsage())
			return ExitOK
		}
		if c, ok := Get(strings.ToLower(args[1])); ok {
			fmt.Fprintf(Out, "Usage: skyvault %s\n  %s\n", c.Usage(), c.Description())
			return ExitOK
		}
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[1])
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	return report(name, c, c.Run(ctx, cfg, args[1:]))
}

// report печатает результат команды и выбирает код завершения.
func report(name string, c Command, err error) int {
	var st *api.StatusError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: skyvault %s\n", c.Usage())
		return ExitUsage
	case errors.Is(err, errNotLoggedIn):
		fmt.Fprintln(Out, err)
		return ExitAuth
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(Out, "%s: interrupted\n", name)
		return ExitInterrupted
	case errors.As(err, &st) && (st.Code == http.StatusUnauthorized || st.Code == http.StatusForbidden):
		fmt.Fprintf(Out, "%s: %s\nThe session is missing or expired, run: skyvault login <email> <password>\n", name, serverMessage(st))
		return ExitAuth
	case errors.As(err, &st):
		fmt.Fprintf(Out, "%s: %s (HTTP %d)\n", name, serverMessage(st), st.Code)
		return ExitFailure
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return ExitFailure
	}
}

func serverMessage(st *api.StatusError) string {
	if st.Message == "" {
		return http.StatusText(st.Code)
	}
	return st.Message
}
