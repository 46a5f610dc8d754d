package commands

import (
	"SkyVault/internal/config"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
)

type lsCmd struct{}

func (lsCmd) Name() string        { return "ls" }
func (lsCmd) Description() string { return "List a folder (root by default), trash or shared files" }
func (lsCmd) Usage() string       { return "ls [-tab drive|trash|shared] [folder-id]" }

func (lsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	tab := fs.String("tab", "drive", "drive, trash or shared")
	if err := fs.Parse(args); err != nil || fs.NArg() > 1 {
		return ErrUsage
	}

	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	q := url.Values{"tab": {*tab}}
	if fs.NArg() == 1 {
		q.Set("folderId", fs.Arg(0))
	}
	var l listing
	if err := c.Do(ctx, http.MethodGet, "/api/files", q, nil, &l); err != nil {
		return err
	}
	printListing(l)
	return nil
}

type foldersCmd struct{}

func (foldersCmd) Name() string        { return "folders" }
func (foldersCmd) Description() string { return "List all folders" }
func (foldersCmd) Usage() string       { return "folders" }

func (foldersCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	var list []folder
	if err := c.Do(ctx, http.MethodGet, "/api/files/folders", nil, nil, &list); err != nil {
		return err
	}
	printListing(listing{Folders: list})
	return nil
}

type mkdirCmd struct{}

func (mkdirCmd) Name() string        { return "mkdir" }
func (mkdirCmd) Description() string { return "Create a folder" }
func (mkdirCmd) Usage() string       { return "mkdir <name> [parent-id]" }

func (mkdirCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	req := map[string]any{"name": args[0], "parent_id": nil}
	if len(args) == 2 {
		req["parent_id"] = args[1]
	}
	var resp struct {
		Folder folder `json:"folder"`
	}
	if err := c.Do(ctx, http.MethodPost, "/api/files/folder", nil, req, &resp); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Folder created: %s\n", resp.Folder.ID)
	return nil
}

type uploadCmd struct{}

func (uploadCmd) Name() string        { return "upload" }
func (uploadCmd) Description() string { return "Upload a local file" }
func (uploadCmd) Usage() string       { return "upload <path> [folder-id]" }

func (uploadCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	folderID := ""
	if len(args) == 2 {
		folderID = args[1]
	}
	var resp struct {
		File file `json:"file"`
	}
	if err := c.Upload(ctx, filepath.Base(args[0]), f, folderID, &resp); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Uploaded %s (%s)\n%s\n", resp.File.ID, humanSize(resp.File.Size), resp.File.PublicURL)
	return nil
}

type mvCmd struct{}

func (mvCmd) Name() string        { return "mv" }
func (mvCmd) Description() string { return "Move a file into a folder (or root)" }
func (mvCmd) Usage() string       { return "mv <file-id> <folder-id|root>" }

func (mvCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	return simpleCall(ctx, cfg, http.MethodPut, "/api/files/move", map[string]string{"id": args[0], "folder_id": args[1]})
}

type renameCmd struct{}

func (renameCmd) Name() string        { return "rename" }
func (renameCmd) Description() string { return "Rename a file or folder" }
func (renameCmd) Usage() string       { return "rename <file|folder> <id> <new-name>" }

func (renameCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 || (args[0] != "file" && args[0] != "folder") {
		return ErrUsage
	}
	return simpleCall(ctx, cfg, http.MethodPut, "/api/files/rename", map[string]string{"type": args[0], "id": args[1], "newName": args[2]})
}

// idCmd - команда с единственным аргументом id.
type idCmd struct {
	name, desc, method, prefix string
}

func (c idCmd) Name() string        { return c.name }
func (c idCmd) Description() string { return c.desc }
func (c idCmd) Usage() string       { return c.name + " <id>" }

func (c idCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	return simpleCall(ctx, cfg, c.method, c.prefix+url.PathEscape(args[0]), nil)
}

type searchCmd struct{}

func (searchCmd) Name() string        { return "search" }
func (searchCmd) Description() string { return "Search files and folders by name" }
func (searchCmd) Usage() string       { return "search <query>" }

func (searchCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	var l listing
	if err := c.Do(ctx, http.MethodGet, "/api/files/search", url.Values{"query": {args[0]}}, nil, &l); err != nil {
		return err
	}
	printListing(l)
	return nil
}

// simpleCall выполняет запрос и печатает message из ответа.
func simpleCall(ctx context.Context, cfg *config.Config, method, path string, payload any) error {
	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	var resp messageResponse
	if err := c.Do(ctx, method, path, nil, payload, &resp); err != nil {
		return err
	}
	fmt.Fprintln(Out, resp.Message)
	return nil
}

func init() {
	RegisterCmd(GroupFiles, lsCmd{})
	RegisterCmd(GroupFiles, foldersCmd{})
	RegisterCmd(GroupFiles, mkdirCmd{})
	RegisterCmd(GroupFiles, uploadCmd{})
	RegisterCmd(GroupFiles, mvCmd{})
	RegisterCmd(GroupFiles, renameCmd{})
	RegisterCmd(GroupFiles, searchCmd{})
	RegisterCmd(GroupFiles, idCmd{name: "trash", desc: "Move a file to trash", method: http.MethodDelete, prefix: "/api/files/trash/"})
	RegisterCmd(GroupFiles, idCmd{name: "restore", desc: "Restore a file from trash", method: http.MethodPut, prefix: "/api/files/restore/"})
	RegisterCmd(GroupFiles, idCmd{name: "rm", desc: "Delete a file permanently", method: http.MethodDelete, prefix: "/api/files/"})
	RegisterCmd(GroupFiles, idCmd{name: "rmdir", desc: "Delete a folder (contents are kept)", method: http.MethodDelete, prefix: "/api/files/folders/"})
}
