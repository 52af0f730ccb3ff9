package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/url-registry/internal/app/service"
)

type DeleteHandler struct {
	service service.URLServiceIface
	logger  *zap.Logger
	timeout time.Duration
}

func NewDelete(s service.URLServiceIface, l *zap.Logger, timeout time.Duration) *DeleteHandler {
	return &DeleteHandler{
		service: s,
		logger:  l,
		timeout: timeout,
	}
}

// ByID handles DELETE /urls/{id} and answers with the removed record.
// Ids fit the 32-bit serial column; anything else is rejected with 400.
// A missing id is a storage failure like any other and yields 500.
func (h *DeleteHandler) ByID(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), h.timeout)
	defer cancel()

	raw := chi.URLParam(req, "id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		http.Error(res, "Invalid URL: id must be an integer", http.StatusBadRequest)
		return
	}

	h.logger.Debug("Got id from request params", zap.Int64("id", id))

	r, err := h.service.DeleteURLRecord(ctx, id)
	if err != nil {
		writeServiceError(res, err, h.logger)
		return
	}

	writeJSON(res, r, h.logger)
}
