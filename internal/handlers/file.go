package handlers

import (
	"SkyVault/internal/config"
	"SkyVault/internal/model"
	"SkyVault/internal/service"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FileHandler обслуживает файлы и папки пользователя.
type FileHandler struct {
	DriveService *service.DriveService
	Logger       *zap.SugaredLogger
	Config       *config.Config
}

// NewFileHandler создаёт хендлер файлов
func NewFileHandler(driveService *service.DriveService, logger *zap.SugaredLogger, cfg *config.Config) *FileHandler {
	return &FileHandler{DriveService: driveService, Logger: logger, Config: cfg}
}

type createFolderRequest struct {
	Name     string  `json:"name" validate:"required"`
	ParentID *string `json:"parent_id"`
}

type renameRequest struct {
	ID      string `json:"id" validate:"required"`
	NewName string `json:"newName" validate:"required"`
	Type    string `json:"type" validate:"required"`
}

type moveRequest struct {
	ID       string  `json:"id" validate:"required"`
	FolderID *string `json:"folder_id"`
}

type fileResponse struct {
	Message string `json:"message"`
	File    any    `json:"file"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Upload принимает multipart-форму с полем file и необязательным folderId.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}

	maxFile := h.Config.UploadMaxBytes()
	// запас на служебные части формы
	r.Body = http.MaxBytesReader(w, r.Body, maxFile+1<<20)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		h.Logger.Warnw("Upload: invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()
	if header.Size > maxFile {
		writeError(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.Logger.Warnw("Upload: failed to read file", "error", err)
		writeError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	res, err := h.DriveService.Upload(r.Context(), who, service.UploadInput{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
		FolderID:    r.FormValue("folderId"),
	})
	if err != nil {
		fail(w, h.Logger, "Upload", err, "user_id", who.ID)
		return
	}
	writeJSON(w, http.StatusCreated, fileResponse{Message: "File uploaded", File: res})
}

// List содержимое папки во вкладке tab
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	res, err := h.DriveService.List(r.Context(), who, q.Get("folderId"), q.Get("tab"))
	if err != nil {
		fail(w, h.Logger, "List", err, "user_id", who.ID)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *FileHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	res, err := h.DriveService.ListFolders(r.Context(), who)
	if err != nil {
		fail(w, h.Logger, "ListFolders", err, "user_id", who.ID)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *FileHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	var req createFolderRequest
	if !bind(w, r, h.Logger, &req, "Name required") {
		return
	}
	f, err := h.DriveService.CreateFolder(r.Context(), who, req.Name, deref(req.ParentID))
	if err != nil {
		fail(w, h.Logger, "CreateFolder", err, "user_id", who.ID)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Message string        `json:"message"`
		Folder  *model.Folder `json:"folder"`
	}{"Folder created", f})
}

func (h *FileHandler) Rename(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	var req renameRequest
	if !bind(w, r, h.Logger, &req, "Missing fields") {
		return
	}
	kind, err := model.ParseItemKind(req.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, service.ErrInvalidKind.Error())
		return
	}
	item, err := h.DriveService.Rename(r.Context(), who, kind, req.ID, req.NewName)
	if err != nil {
		fail(w, h.Logger, "Rename", err, "user_id", who.ID, "id", req.ID)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
		Data    any    `json:"data"`
	}{kind.String() + " renamed", item})
}

func (h *FileHandler) Move(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	var req moveRequest
	if !bind(w, r, h.Logger, &req, "id required") {
		return
	}
	f, err := h.DriveService.MoveFile(r.Context(), who, req.ID, deref(req.FolderID))
	if err != nil {
		fail(w, h.Logger, "Move", err, "user_id", who.ID, "id", req.ID)
		return
	}
	writeJSON(w, http.StatusOK, fileResponse{Message: "File moved", File: f})
}

func (h *FileHandler) Trash(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	f, err := h.DriveService.TrashFile(r.Context(), who, id)
	if err != nil {
		fail(w, h.Logger, "Trash", err, "user_id", who.ID, "id", id)
		return
	}
	writeJSON(w, http.StatusOK, fileResponse{Message: "File moved to Trash", File: f})
}

func (h *FileHandler) Restore(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	f, err := h.DriveService.RestoreFile(r.Context(), who, id)
	if err != nil {
		fail(w, h.Logger, "Restore", err, "user_id", who.ID, "id", id)
		return
	}
	writeJSON(w, http.StatusOK, fileResponse{Message: "File restored", File: f})
}

// Delete удаляет файл навсегда
func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.DriveService.DeleteFile(r.Context(), who, id); err != nil {
		fail(w, h.Logger, "Delete", err, "user_id", who.ID, "id", id)
		return
	}
	writeJSON(w, http.StatusOK, message{Message: "File permanently deleted"})
}

func (h *FileHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.DriveService.DeleteFolder(r.Context(), who, id); err != nil {
		fail(w, h.Logger, "DeleteFolder", err, "user_id", who.ID, "id", id)
		return
	}
	writeJSON(w, http.StatusOK, message{Message: "Folder deleted"})
}

func (h *FileHandler) Search(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	res, err := h.DriveService.Search(r.Context(), who, r.URL.Query().Get("query"))
	if err != nil {
		fail(w, h.Logger, "Search", err, "user_id", who.ID)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
