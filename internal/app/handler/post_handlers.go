package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/url-registry/internal/app/service"
	"github.com/atinyakov/url-registry/internal/models"
)

type PostHandler struct {
	service service.URLServiceIface
	logger  *zap.Logger
	timeout time.Duration
}

func NewPost(s service.URLServiceIface, l *zap.Logger, timeout time.Duration) *PostHandler {
	return &PostHandler{
		service: s,
		logger:  l,
		timeout: timeout,
	}
}

// Create handles POST /urls: stores the long_url from the body and answers
// with the created record.
func (h *PostHandler) Create(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), h.timeout)
	defer cancel()

	var request models.NewURLRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		writeDecodeError(res, err, h.logger)
		return
	}

	if request.LongURL == nil {
		writeDecodeError(res, missingField("long_url"), h.logger)
		return
	}

	r, err := h.service.CreateURLRecord(ctx, *request.LongURL)
	if err != nil {
		writeServiceError(res, err, h.logger)
		return
	}

	writeJSON(res, r, h.logger)
}
