package response

import (
	"encoding/json"
	"net/http"
)

// Response is the body of failures that happen before a view can be built.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// RedirectBody accompanies a 303 so that JSON clients can follow it too.
type RedirectBody struct {
	Redirect string `json:"redirect"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, statusCode int, message string, err interface{}) {
	JSON(w, statusCode, Response{
		Success: false,
		Message: message,
		Error:   err,
	})
}

// Redirect answers with 303 See Other so the follow-up request is always a GET.
func Redirect(w http.ResponseWriter, location string) {
	w.Header().Set("Location", location)
	JSON(w, http.StatusSeeOther, RedirectBody{Redirect: location})
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message, nil)
}
