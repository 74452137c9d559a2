package handlers

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/Chimelu/hafak-surgicals-backend/internal/api/middleware"
	appErrors "github.com/Chimelu/hafak-surgicals-backend/internal/errors"
	"github.com/Chimelu/hafak-surgicals-backend/internal/media"
	"github.com/Chimelu/hafak-surgicals-backend/internal/utils"
	"github.com/Chimelu/hafak-surgicals-backend/internal/utils/response"
	"github.com/Chimelu/hafak-surgicals-backend/internal/validation"
	"github.com/google/uuid"
)

// Multipart bodies beyond this are spilled to temporary files by net/http.
const maxMemory = 32 << 20

// writeError logs the failure at a level matching its class and writes the
// error envelope. Server-side detail never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := middleware.LoggerFromContext(r.Context())

	appErr, ok := appErrors.IsAppError(err)
	switch {
	case !ok || appErr.StatusCode >= http.StatusInternalServerError:
		logger.Error("Request failed", slog.String("error", errorChain(err)))
	default:
		logger.Warn("Request rejected", slog.String("error", errorChain(err)), slog.Int("status", appErr.StatusCode))
	}

	response.Error(w, err)
}

func errorChain(err error) string {
	if appErr, ok := appErrors.IsAppError(err); ok && appErr.Err != nil {
		return appErr.Message + ": " + appErr.Err.Error()
	}

	return err.Error()
}

// pathID parses the {id} path segment. A malformed id cannot match any record
// and is reported as not found.
func pathID(r *http.Request, entity string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, appErrors.NotFoundError(entity + " not found").WithError(err)
	}

	return id, nil
}

func decodeQuery(r *http.Request, dest any) error {
	if err := utils.DecodeQuery(r.URL.Query(), dest); err != nil {
		return appErrors.BadRequestError("Invalid query parameters").WithError(err)
	}

	return nil
}

func decodeJSON(r *http.Request, dest any) error {
	if err := utils.DecodeJSONBody(r, dest); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return appErrors.BadRequestError("Request body cannot be empty").WithError(err)
		}
		return appErrors.BadRequestError("Invalid request body").WithError(err)
	}

	return nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))

	return err == nil && mediaType == "multipart/form-data"
}

// decodePayload reads dest from either a multipart form or a JSON body and
// returns any attached files.
func decodePayload(r *http.Request, dest any) ([]*media.File, error) {
	if !isMultipart(r) {
		return nil, decodeJSON(r, dest)
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return nil, appErrors.BadRequestError("Invalid multipart form").WithError(err)
	}

	if err := utils.DecodeForm(r.MultipartForm.Value, dest); err != nil {
		var fieldErr *utils.FormFieldError
		if errors.As(err, &fieldErr) {
			return nil, appErrors.AddValidationError(fieldErr.Field, "has an invalid value").WithError(err)
		}
		return nil, appErrors.BadRequestError("Invalid form data").WithError(err)
	}

	files, err := media.FilesFromMultipart(r.MultipartForm)
	if err != nil {
		return nil, appErrors.BadRequestError("Invalid file upload").WithError(err)
	}

	return files, nil
}

// validate fills defaults when requested, then cleans and checks dest.
func validate(ctx context.Context, v *validation.Validator, dest any, withDefaults bool) error {
	if withDefaults {
		if err := v.ApplyDefaults(dest); err != nil {
			return err
		}
	}

	return v.Struct(ctx, dest)
}
