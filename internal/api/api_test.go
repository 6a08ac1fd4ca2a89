package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knight-sequences/internal/keypad"
	"knight-sequences/internal/sequence"
)

func newTestHandler(t *testing.T) (http.Handler, *Server) {
	t.Helper()
	db := setupTestDB(t)
	server := NewServer(db, keypad.Standard(), sequence.DefaultOptions(2))
	h := HandlerWithOptions(server, ChiServerOptions{
		BaseRouter:       chi.NewRouter(),
		ErrorHandlerFunc: ErrorHandler,
	})
	return h, server.(*Server)
}

func TestServer_CountSequences(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedCount  uint64
		expectedBudget int
		expectedError  string
	}{
		{
			name:           "Success",
			path:           "/sequences/10",
			expectedStatus: http.StatusOK,
			expectedCount:  1013398,
			expectedBudget: 2,
		},
		{
			name:           "ZeroLength",
			path:           "/sequences/0",
			expectedStatus: http.StatusOK,
			expectedCount:  1,
			expectedBudget: 2,
		},
		{
			name:           "NegativeLength",
			path:           "/sequences/-4",
			expectedStatus: http.StatusOK,
			expectedCount:  1,
			expectedBudget: 2,
		},
		{
			name:           "WorkerOverride",
			path:           "/sequences/5?workers=1",
			expectedStatus: http.StatusOK,
			expectedCount:  2486,
			expectedBudget: 2,
		},
		{
			name:           "NoVowels",
			path:           "/sequences/3?vowels=0",
			expectedStatus: http.StatusOK,
			expectedCount:  120,
			expectedBudget: 0,
		},
		{
			name:           "BadRequest_NotAnInteger",
			path:           "/sequences/ten",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "length",
		},
		{
			name:           "BadRequest_TooLong",
			path:           "/sequences/65",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Length must be at most 64",
		},
		{
			name:           "BadRequest_ZeroWorkers",
			path:           "/sequences/5?workers=0",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Workers must be between",
		},
		{
			name:           "BadRequest_InvalidWorkers",
			path:           "/sequences/5?workers=many",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "workers",
		},
		{
			name:           "BadRequest_NegativeVowels",
			path:           "/sequences/5?vowels=-1",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Vowels must be between",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s := newTestHandler(t)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedError != "" {
				var errResp map[string]string
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
				assert.Contains(t, errResp["error"], tt.expectedError)
				return
			}

			var run Run
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&run))
			assert.Equal(t, tt.expectedCount, run.Count)
			assert.Equal(t, tt.expectedBudget, run.VowelBudget)
			assert.NotEmpty(t, run.RunId)

			stored, err := GetRun(s.db, run.RunId)
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.Equal(t, run.Count, stored.Count)
		})
	}
}

func TestServer_CountSequences_DBError(t *testing.T) {
	_, s := newTestHandler(t)
	s.db.Close()

	req := httptest.NewRequest(http.MethodGet, "/sequences/3", nil)
	w := httptest.NewRecorder()
	s.CountSequences(w, req, 3, CountSequencesParams{})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_GetKeypad(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/keypad", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var keys []Key
	require.NoError(t, json.NewDecoder(w.Body).Decode(&keys))
	require.Len(t, keys, 18)

	assert.Equal(t, Key{Name: "A", Row: 1, Col: 1, Vowel: true, Neighbors: []string{"H", "L"}}, keys[0])
	assert.Equal(t, Key{Name: "2", Row: 4, Col: 3, Neighbors: []string{"G", "I", "K", "O"}}, keys[16])
}

func TestServer_ListRuns(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		closeDB        bool
		expectedStatus int
		expectedCount  int
	}{
		{name: "DefaultLimit", path: "/runs", expectedStatus: http.StatusOK, expectedCount: 3},
		{name: "ExplicitLimit", path: "/runs?limit=2", expectedStatus: http.StatusOK, expectedCount: 2},
		{name: "BadRequest_Limit", path: "/runs?limit=0", expectedStatus: http.StatusBadRequest},
		{name: "BadRequest_LimitFormat", path: "/runs?limit=x", expectedStatus: http.StatusBadRequest},
		{name: "InternalServerError_DBError", path: "/runs", closeDB: true, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s := newTestHandler(t)
			for i := 1; i <= 3; i++ {
				require.NoError(t, SaveRun(s.db, &Run{Length: i, Count: uint64(i)}))
			}
			if tt.closeDB {
				s.db.Close()
			}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var runs []Run
				require.NoError(t, json.NewDecoder(w.Body).Decode(&runs))
				assert.Len(t, runs, tt.expectedCount)
			}
		})
	}
}

func TestServer_GetRun(t *testing.T) {
	tests := []struct {
		name           string
		runID          string
		closeDB        bool
		expectedStatus int
	}{
		{name: "Found", runID: "run-1", expectedStatus: http.StatusOK},
		{name: "NotFound", runID: "nope", expectedStatus: http.StatusNotFound},
		{name: "InternalServerError_DBError", runID: "run-1", closeDB: true, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s := newTestHandler(t)
			require.NoError(t, SaveRun(s.db, &Run{RunId: "run-1", Length: 4, Count: 732}))
			if tt.closeDB {
				s.db.Close()
			}

			req := httptest.NewRequest(http.MethodGet, "/runs/"+tt.runID, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var run Run
				require.NoError(t, json.NewDecoder(w.Body).Decode(&run))
				assert.Equal(t, "run-1", run.RunId)
				assert.Equal(t, uint64(732), run.Count)
			}
		})
	}
}
