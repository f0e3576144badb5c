package httputils

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/wgomg/ordertrigger/internal/utils"
)

// StatusResponse is the {status, message} body shared by the webhook and its callers.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func JSONResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	render.Status(r, status)
	render.JSON(w, r, data)
}

func JSONError(w http.ResponseWriter, r *http.Request, status int, message string) {
	JSONResponse(w, r, status, StatusResponse{
		Status:  "error",
		Message: message,
	})
}

func SuccessResponse(w http.ResponseWriter, r *http.Request, message string) {
	JSONResponse(w, r, http.StatusOK, StatusResponse{
		Status:  "success",
		Message: message,
	})
}

// LogResponseBody logs a response body that has already been read.
func LogResponseBody(body []byte, statusCode int, logger *utils.Logger, reqID string) {
	if !logger.RawBodyLog {
		return
	}

	logger.Debug(&reqID, "Raw response body (%d): %s", statusCode, string(body))
}
