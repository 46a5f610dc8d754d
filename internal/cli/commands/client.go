package commands

import (
	"SkyVault/internal/cli/api"
	"SkyVault/internal/cli/auth"
	"SkyVault/internal/config"
	"errors"
)

var errNotLoggedIn = errors.New("not logged in, run: skyvault login <email> <password>")

// anonClient - клиент без токена для команд учётной записи.
func anonClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.ServerURL, "")
}

// authedClient - клиент с сохранённым токеном.
func authedClient(cfg *config.Config) (*api.Client, error) {
	tok, err := auth.LoadToken()
	if err != nil || tok == "" {
		return nil, errNotLoggedIn
	}
	return api.NewClient(cfg.ServerURL, tok), nil
}

type file struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Size      int64   `json:"size"`
	Type      string  `json:"type"`
	FolderID  *string `json:"folder_id"`
	IsDeleted bool    `json:"is_deleted"`
	PublicURL string  `json:"publicUrl"`
}

type folder struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

type listing struct {
	Folders []folder `json:"folders"`
	Files   []file   `json:"files"`
}

type share struct {
	FileID          string `json:"file_id"`
	SharedWithEmail string `json:"shared_with_email"`
	Role            string `json:"role"`
}

type messageResponse struct {
	Message string `json:"message"`
}
