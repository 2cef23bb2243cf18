package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/scry-quiz/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         any
		expectedBody string
	}{
		{
			name:         "successful response",
			status:       http.StatusOK,
			data:         map[string]any{"score": 67},
			expectedBody: `{"score":67}`,
		},
		{
			name:         "empty response",
			status:       http.StatusCreated,
			data:         map[string]any{},
			expectedBody: `{}`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedBody+"\n", w.Body.String())
		})
	}
}

func TestRespondWithJSONEncodingError(t *testing.T) {
	log, buf := logger.GetTestLogger(t)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), log))
	w := httptest.NewRecorder()

	// Channels cannot be JSON encoded
	RespondWithJSON(w, req, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), "failed to encode JSON response")
}

func TestRespondWithError(t *testing.T) {
	ctx := WithTraceID(context.Background(), "test-trace-id")
	req := httptest.NewRequest(http.MethodGet, "/test", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusBadRequest, "Invalid request")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Invalid request", response.Error)
	assert.Equal(t, "test-trace-id", response.TraceID)
	assert.Nil(t, response.Fields)
}

func TestRespondWithErrorNoTraceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusNotFound, "Not found")

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Not found", response.Error)
	assert.Empty(t, response.TraceID)
	assert.NotContains(t, w.Body.String(), "trace_id")
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name             string
		statusCode       int
		err              error
		opts             []ResponseOption
		expectedLogLevel string
	}{
		{
			name:             "server error",
			statusCode:       http.StatusInternalServerError,
			err:              errors.New("engine exploded"),
			expectedLogLevel: "ERROR",
		},
		{
			name:             "client error with default log level",
			statusCode:       http.StatusBadRequest,
			err:              errors.New("bad card"),
			expectedLogLevel: "DEBUG",
		},
		{
			name:             "client error with elevated log level",
			statusCode:       http.StatusBadRequest,
			err:              errors.New("bad card"),
			opts:             []ResponseOption{WithElevatedLogLevel()},
			expectedLogLevel: "WARN",
		},
		{
			name:             "payload too large",
			statusCode:       http.StatusRequestEntityTooLarge,
			err:              errors.New("too many cards"),
			expectedLogLevel: "WARN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, buf := logger.GetTestLogger(t)
			ctx := logger.WithLogger(WithTraceID(context.Background(), "trace-1"), log)
			req := httptest.NewRequest(http.MethodPost, "/api/tests", nil).WithContext(ctx)
			w := httptest.NewRecorder()

			RespondWithErrorAndLog(w, req, tc.statusCode, "Safe message", tc.err, tc.opts...)

			assert.Equal(t, tc.statusCode, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, "Safe message", response.Error)
			assert.Equal(t, "trace-1", response.TraceID)
			assert.NotContains(t, w.Body.String(), tc.err.Error(), "raw error must not reach the client")

			entries, err := buf.GetLogEntries()
			require.NoError(t, err)
			require.NotEmpty(t, entries)
			last := entries[len(entries)-1]
			assert.Equal(t, tc.expectedLogLevel, last["level"])
			assert.Equal(t, tc.err.Error(), last["error"])
			assert.Equal(t, "trace-1", last["trace_id"])
		})
	}
}

func TestRespondWithErrorAndLogFieldErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/tests", nil)
	w := httptest.NewRecorder()

	fields := map[string]string{"cards[0].term": "term is a required field"}
	RespondWithErrorAndLog(w, req, http.StatusBadRequest, "Validation error", nil, WithFieldErrors(fields))

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, fields, response.Fields)
	assert.True(t, strings.Contains(w.Body.String(), `"fields"`))
}
