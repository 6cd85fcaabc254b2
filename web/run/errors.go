package webapp

import (
	"net/http"
)

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "not found",
	http.StatusInternalServerError: "internal server error",
	http.StatusServiceUnavailable:  "service unavailable",
}

type errorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

func renderError(w http.ResponseWriter, code int, message string) {
	if message == "" {
		message = errorMessages[code]
	}
	writeJSON(w, code, errorResponse{Code: code, Error: message})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	renderError(w, http.StatusNotFound, "")
}
