package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vocab-tuister/core/rogo"
)

func newTestHandler() *Handler {
	store := NewStore()
	asker := rogo.NewAsker(rogo.NewRand(), nil)
	return NewHandler(store, asker)
}

func newTestMux() *http.ServeMux {
	mux := http.NewServeMux()
	newTestHandler().Routes(mux)
	return mux
}

func TestSendVocabSuccess(t *testing.T) {
	t.Parallel()
	mux := newTestMux()
	req := httptest.NewRequest(http.MethodPost, "/send-vocab", bytes.NewBufferString("@ Noun\nfarmer: agricola, agricolae, (m)\n"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Vocab list received.", rec.Body.String())
}

func TestSendVocabInvalidFormat(t *testing.T) {
	t.Parallel()
	mux := newTestMux()
	req := httptest.NewRequest(http.MethodPost, "/send-vocab", bytes.NewBufferString("@ NotAPartOfSpeech\nfoo: bar\n"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bad request: 400 Bad Request: InvalidVocabFileFormatError: Invalid part of speech: 'NotAPartOfSpeech'")
}

func TestSessionWithoutVocabList(t *testing.T) {
	t.Parallel()
	mux := newTestMux()
	req := httptest.NewRequest(http.MethodPost, "/session", bytes.NewBufferString(`{"number-of-questions": 1}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Vocab list has not been provided.")
}

func TestSessionMissingRequiredSetting(t *testing.T) {
	t.Parallel()
	mux := newTestMux()

	sendReq := httptest.NewRequest(http.MethodPost, "/send-vocab", bytes.NewBufferString("@ Noun\nfarmer: agricola, agricolae, (m)\n"))
	sendRec := httptest.NewRecorder()
	mux.ServeHTTP(sendRec, sendReq)
	require.Equal(t, http.StatusOK, sendRec.Code)
	cookie := sendRec.Result().Cookies()[0]

	sessionReq := httptest.NewRequest(http.MethodPost, "/session", bytes.NewBufferString(`{}`))
	sessionReq.AddCookie(cookie)
	sessionRec := httptest.NewRecorder()
	mux.ServeHTTP(sessionRec, sessionReq)

	assert.Equal(t, http.StatusBadRequest, sessionRec.Code)
	assert.Contains(t, sessionRec.Body.String(), "Required settings are missing: 'number-of-questions'. (InvalidSettingsError)")
}

func TestSessionProducesQuestions(t *testing.T) {
	t.Parallel()
	mux := newTestMux()

	sendReq := httptest.NewRequest(http.MethodPost, "/send-vocab", bytes.NewBufferString("@ Noun\nfarmer: agricola, agricolae, (m)\n"))
	sendRec := httptest.NewRecorder()
	mux.ServeHTTP(sendRec, sendReq)
	require.Equal(t, http.StatusOK, sendRec.Code)
	cookie := sendRec.Result().Cookies()[0]

	body := `{"number-of-questions": 3, "include-parse": true}`
	sessionReq := httptest.NewRequest(http.MethodPost, "/session", bytes.NewBufferString(body))
	sessionReq.AddCookie(cookie)
	sessionRec := httptest.NewRecorder()
	mux.ServeHTTP(sessionRec, sessionReq)

	require.Equal(t, http.StatusOK, sessionRec.Code)
	var questions []map[string]any
	require.NoError(t, json.Unmarshal(sessionRec.Body.Bytes(), &questions))
	assert.Len(t, questions, 3)
	for _, q := range questions {
		assert.Equal(t, "ParseWordLatToCompQuestion", q["question_type"])
	}
}
