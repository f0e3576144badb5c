package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/wgomg/ordertrigger/internal/utils"
	"github.com/wgomg/ordertrigger/internal/utils/httputils"
)

const ordersProcessedMessage = "Orders processed"

type Handler struct {
	logger    *utils.Logger
	processor Processor
}

func NewHandler(logger *utils.Logger, processor Processor) *Handler {
	return &Handler{
		logger:    logger,
		processor: processor,
	}
}

func (h *Handler) HandleStartOrders(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	if _, err := httputils.LogRequestBody(r, h.logger, reqID); err != nil {
		h.logger.Error(&reqID, "Failed to read request body: %v", err)
		httputils.HandleError(w, r, &httputils.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Failed to read request body",
		})
		return
	}

	var payload StartOrdersPayload
	if err := httputils.DecodeJSON(r, &payload); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		httputils.HandleError(w, r, err)
		return
	}

	sheetID := strings.TrimSpace(payload.Sheet)
	if sheetID == "" {
		h.logger.Error(&reqID, "Request without sheet id")
		httputils.HandleError(w, r, &httputils.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "sheet is required",
		})
		return
	}

	h.logger.Info(&reqID, "Received start-orders: sheet=%s", sheetID)

	if err := h.processor.StartOrders(r.Context(), sheetID, reqID); err != nil {
		h.logger.Error(&reqID, "Error processing orders: %v", err)
		httputils.HandleError(w, r, err)
		return
	}

	httputils.SuccessResponse(w, r, ordersProcessedMessage)
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputils.JSONResponse(w, r, http.StatusOK, httputils.StatusResponse{
		Status:  "ok",
		Message: "ordertrigger receiver is running",
	})
}

func (h *Handler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	httputils.JSONError(w, r, http.StatusNotFound, "not found")
}

func (h *Handler) HandleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	httputils.JSONError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
}
