package commands

import (
	"SkyVault/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "login".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "login <email> <password>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// Group - раздел справки, в котором показывается команда.
type Group int

const (
	GroupAccount Group = iota
	GroupFiles
	GroupSharing
	GroupOther
)

func (g Group) String() string {
	switch g {
	case GroupAccount:
		return "Account"
	case GroupFiles:
		return "Files and folders"
	case GroupSharing:
		return "Sharing"
	default:
		return "Other"
	}
}

type entry struct {
	cmd   Command
	group Group
}

// registry holds available commands by name.
var registry = map[string]entry{}

// Out - общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// RegisterCmd adds a command to the registry under the given help group.
// Should be called from init() of each command file.
func RegisterCmd(group Group, cmd Command) {
	registry[cmd.Name()] = entry{cmd: cmd, group: group}
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	e, ok := registry[name]
	return e.cmd, ok
}

// List returns all registered commands sorted by group, then by name.
func List() []Command {
	entries := make([]entry, 0, len(registry))
	for _, e := range registry {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].group != entries[j].group {
			return entries[i].group < entries[j].group
		}
		return entries[i].cmd.Name() < entries[j].cmd.Name()
	})
	list := make([]Command, len(entries))
	for i, e := range entries {
		list[i] = e.cmd
	}
	return list
}

// FormatGlobalUsage builds a help text with one section per command group.
func FormatGlobalUsage() string {
	width := 0
	for _, c := range List() {
		width = max(width, len(c.Usage()))
	}

	lines := []string{
		"SkyVault CLI",
		"",
		"Usage:",
		"  skyvault [-a <host:port>] [-https] <command> [args]",
		"  skyvault help <command>",
	}
	current := Group(-1)
	for _, c := range List() {
		if g := registry[c.Name()].group; g != current {
			current = g
			lines = append(lines, "", current.String()+":")
		}
		lines = append(lines, fmt.Sprintf("  %-*s  %s", width, c.Usage(), c.Description()))
	}
	lines = append(lines, "",
		"The server address is taken from -a / BASE_URL; the session token is kept in the user config dir.")
	return strings.Join(lines, "\n") + "\n"
}
