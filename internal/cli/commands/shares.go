package commands

import (
	"SkyVault/internal/config"
	"context"
	"net/http"
	"net/url"
)

type shareCmd struct{}

func (shareCmd) Name() string        { return "share" }
func (shareCmd) Description() string { return "Grant access to a file" }
func (shareCmd) Usage() string       { return "share <file-id> <email> <viewer|editor|owner>" }

func (shareCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	return simpleCall(ctx, cfg, http.MethodPost, "/api/shares", map[string]string{
		"file_id":           args[0],
		"shared_with_email": args[1],
		"role":              args[2],
	})
}

type sharesCmd struct{}

func (sharesCmd) Name() string        { return "shares" }
func (sharesCmd) Description() string { return "List grants of a file" }
func (sharesCmd) Usage() string       { return "shares <file-id>" }

func (sharesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	var list []share
	if err := c.Do(ctx, http.MethodGet, "/api/shares/"+url.PathEscape(args[0]), nil, nil, &list); err != nil {
		return err
	}
	printShares(list)
	return nil
}

type unshareCmd struct{}

func (unshareCmd) Name() string        { return "unshare" }
func (unshareCmd) Description() string { return "Revoke access to a file" }
func (unshareCmd) Usage() string       { return "unshare <file-id> <email>" }

func (unshareCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	return simpleCall(ctx, cfg, http.MethodDelete, "/api/shares/"+url.PathEscape(args[0])+"?email="+url.QueryEscape(args[1]), nil)
}

func init() {
	RegisterCmd(GroupSharing, shareCmd{})
	RegisterCmd(GroupSharing, sharesCmd{})
	RegisterCmd(GroupSharing, unshareCmd{})
}
