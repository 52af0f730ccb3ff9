package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/url-registry/internal/app/service"
)

type GetHandler struct {
	service service.URLServiceIface
	logger  *zap.Logger
	timeout time.Duration
}

func NewGet(s service.URLServiceIface, l *zap.Logger, timeout time.Duration) *GetHandler {
	return &GetHandler{
		service: s,
		logger:  l,
		timeout: timeout,
	}
}

// List handles GET /urls and answers with every stored record.
func (h *GetHandler) List(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), h.timeout)
	defer cancel()

	records, err := h.service.ListURLRecords(ctx)
	if err != nil {
		writeServiceError(res, err, h.logger)
		return
	}

	writeJSON(res, records, h.logger)
}

func (h *GetHandler) PingDB(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), h.timeout)
	defer cancel()

	if err := h.service.PingContext(ctx); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
}
