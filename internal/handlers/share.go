package handlers

import (
	"SkyVault/internal/model"
	"SkyVault/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ShareHandler - выдача доступа к файлам по email.
type ShareHandler struct {
	ShareService *service.ShareService
	Logger       *zap.SugaredLogger
}

func NewShareHandler(shareService *service.ShareService, logger *zap.SugaredLogger) *ShareHandler {
	return &ShareHandler{ShareService: shareService, Logger: logger}
}

type createShareRequest struct {
	FileID          string `json:"file_id" validate:"required"`
	SharedWithEmail string `json:"shared_with_email" validate:"required"`
	Role            string `json:"role" validate:"required"`
}

func (h *ShareHandler) Create(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	var req createShareRequest
	if !bind(w, r, h.Logger, &req, "file_id, shared_with_email, and role are required") {
		return
	}
	sh, err := h.ShareService.Create(r.Context(), who, req.FileID, req.SharedWithEmail, model.Role(req.Role))
	if err != nil {
		fail(w, h.Logger, "CreateShare", err, "user_id", who.ID, "file_id", req.FileID)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Message string       `json:"message"`
		Share   *model.Share `json:"share"`
	}{"File shared successfully", sh})
}

func (h *ShareHandler) List(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	fileID := chi.URLParam(r, "fileId")
	list, err := h.ShareService.List(r.Context(), who, fileID)
	if err != nil {
		fail(w, h.Logger, "ListShares", err, "user_id", who.ID, "file_id", fileID)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Revoke снимает выдачу: DELETE /api/shares/{fileId}?email=
func (h *ShareHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	fileID := chi.URLParam(r, "fileId")
	if err := h.ShareService.Revoke(r.Context(), who, fileID, r.URL.Query().Get("email")); err != nil {
		fail(w, h.Logger, "RevokeShare", err, "user_id", who.ID, "file_id", fileID)
		return
	}
	writeJSON(w, http.StatusOK, message{Message: "Share revoked"})
}
