package httputils

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// HandleError writes err as a {status, message} body. Errors that are not
// *HTTPError become a 500.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		JSONError(w, r, httpErr.Code, httpErr.Message)
	} else {
		JSONError(w, r, http.StatusInternalServerError, err.Error())
	}
}
