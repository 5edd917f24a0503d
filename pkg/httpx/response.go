package httpx

import (
	"encoding/json"
	"net/http"
)

// ApplicationCodeHeader carries the configured application code on every
// response, success or error.
const ApplicationCodeHeader = "X-Application-Code"

// Envelope response codes. Success is fixed by the API contract; the error
// codes are this service's convention.
const (
	CodeSuccess    = "00"
	CodeBadRequest = "01"
	CodeNotFound   = "02"
	CodeConflict   = "03"
	CodeInternal   = "99"
)

const descSuccess = "Success"

// Envelope is the uniform response body. Every endpoint, including error
// responses, answers with this shape.
type Envelope struct {
	ResponseCode string `json:"responseCode"`
	ResponseDesc string `json:"responseDesc"`
	ResponseData any    `json:"responseData"`
}

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded — use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Success writes a 200 envelope with responseCode "00" and the given payload.
func Success(w http.ResponseWriter, appCode string, data any) {
	setAppCode(w, appCode)
	JSON(w, http.StatusOK, Envelope{
		ResponseCode: CodeSuccess,
		ResponseDesc: descSuccess,
		ResponseData: data,
	})
}

// Fail writes an error envelope with the given HTTP status, envelope code,
// and human-readable description. responseData is always null on errors.
func Fail(w http.ResponseWriter, status int, appCode, code, desc string) {
	setAppCode(w, appCode)
	JSON(w, status, Envelope{
		ResponseCode: code,
		ResponseDesc: desc,
		ResponseData: nil,
	})
}

func setAppCode(w http.ResponseWriter, appCode string) {
	if appCode != "" {
		w.Header().Set(ApplicationCodeHeader, appCode)
	}
}

// SafeError returns the error message for client responses.
// In production (isProduction=true), internal server errors (5xx) are replaced
// with a generic message to avoid leaking implementation details.
func SafeError(err error, status int, isProduction bool) string {
	if isProduction && status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
