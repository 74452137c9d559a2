package response

import (
	"encoding/json"
	"net/http"

	"github.com/Chimelu/hafak-surgicals-backend/internal/errors"
	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
)

// APIResponse is the single envelope used by every endpoint.
type APIResponse struct {
	Success    bool               `json:"success"`
	Count      *int               `json:"count,omitempty"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
	Data       any                `json:"data,omitempty"`
	Message    string             `json:"message,omitempty"`
	Code       string             `json:"code,omitempty"`
	Errors     map[string]string  `json:"errors,omitempty"`
}

const serverErrorMessage = "Server error"

// interface {} == any
func WriteJson(w http.ResponseWriter, statusCode int, data any) error {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data) //struct to json
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	response := APIResponse{
		Success: true,
		Data:    data,
	}

	WriteJson(w, statusCode, response)
}

// List writes a collection together with its size and, when known, the page metadata.
func List(w http.ResponseWriter, data any, count int, pagination *models.Pagination) {
	response := APIResponse{
		Success:    true,
		Count:      &count,
		Pagination: pagination,
		Data:       data,
	}

	WriteJson(w, http.StatusOK, response)
}

func Message(w http.ResponseWriter, statusCode int, message string) {
	response := APIResponse{
		Success: true,
		Message: message,
	}

	WriteJson(w, statusCode, response)
}

// SuccessWithMessage carries both a payload and a human-readable note.
func SuccessWithMessage(w http.ResponseWriter, statusCode int, message string, data any) {
	response := APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}

	WriteJson(w, statusCode, response)
}

func Error(w http.ResponseWriter, err error) {

	appErr, ok := errors.IsAppError(err)
	if !ok {
		WriteJson(w, http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: serverErrorMessage,
			Code:    errors.ErrCodeInternal,
		})
		return
	}

	response := APIResponse{
		Success: false,
		Message: appErr.Message,
		Code:    appErr.Code,
	}

	if len(appErr.Fields) > 0 {
		response.Errors = appErr.Fields
	}

	if appErr.StatusCode >= http.StatusInternalServerError && appErr.Message == "" {
		response.Message = serverErrorMessage
	}

	WriteJson(w, appErr.StatusCode, response)
}
