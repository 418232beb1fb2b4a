package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorList(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteErrorList(rec, http.StatusBadRequest, "Name is required", "Password must be at least 6 characters")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ErrorListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, "Name is required", resp.Errors[0].Msg)
	assert.Equal(t, "Password must be at least 6 characters", resp.Errors[1].Msg)
}

func TestWriteErrorList_SemanticErrorUses200(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteErrorList(rec, http.StatusOK, "Invalid credentials")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ErrorListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "Invalid credentials", resp.Errors[0].Msg)
}

func TestWriteMsg(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteMsg(rec, http.StatusNotFound, "Post not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg": "Post not found"}`, rec.Body.String())
}

func TestWriteServerError_PlainText(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteServerError(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Server error", rec.Body.String())
}
