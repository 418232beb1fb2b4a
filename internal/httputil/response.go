package httputil

import (
	"encoding/json"
	"net/http"
)

// APIError is a single body-level error entry.
type APIError struct {
	Msg string `json:"msg"`
}

// ErrorListResponse is the validation/semantic error format:
// {"errors": [{"msg": "Human readable message"}, ...]}
type ErrorListResponse struct {
	Errors []APIError `json:"errors"`
}

// MsgResponse is the single-message format: {"msg": "Human readable message"}
type MsgResponse struct {
	Msg string `json:"msg"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// If encoding fails, we can't do much - headers already sent
			return
		}
	}
}

// WriteErrorList writes a body-level error array. Validation failures use
// status 400; duplicate-email and bad-credentials responses use status 200,
// matching the established API contract.
func WriteErrorList(w http.ResponseWriter, status int, msgs ...string) {
	resp := ErrorListResponse{Errors: make([]APIError, len(msgs))}
	for i, m := range msgs {
		resp.Errors[i] = APIError{Msg: m}
	}
	WriteJSON(w, status, resp)
}

// WriteMsg writes a {"msg": ...} response with the given status code.
func WriteMsg(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, MsgResponse{Msg: msg})
}

// WriteServerError writes the catch-all 500 response. The body is plain text,
// not JSON; clients only ever inspect the status code on this path.
func WriteServerError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte("Server error"))
}
