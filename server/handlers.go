package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/vocab-tuister/core/lego"
	"github.com/vocab-tuister/core/rogo"
)

// Handler wires the two endpoints (spec §6.1) against a Store and an
// Asker. Grounded on the teacher's own `writeJSON`/`writeError` handler
// pair, generalized to the plain-text error shape this wire protocol uses
// instead of a JSON error envelope.
type Handler struct {
	store *Store
	asker *rogo.Asker
}

// NewHandler builds a Handler.
func NewHandler(store *Store, asker *rogo.Asker) *Handler {
	return &Handler{store: store, asker: asker}
}

// Routes registers the two endpoints on mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/send-vocab", h.handleSendVocab)
	mux.HandleFunc("/session", h.handleSession)
}

// writeBadRequest renders the exact `Bad request: 400 Bad Request: <detail>`
// shape the wire protocol requires (spec §6.1), grounded on the upstream
// reference's werkzeug `BadRequest` description wrapping in `app.py`.
func writeBadRequest(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	fmt.Fprintf(w, "Bad request: 400 Bad Request: %s", detail)
}

func writeInternalError(w http.ResponseWriter, err error) {
	log.Printf("internal error: %v", err)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	fmt.Fprint(w, "Internal server error.")
}

func (h *Handler) handleSendVocab(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	token := ClientToken(w, r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeBadRequest(w, fmt.Sprintf("InvalidVocabFileFormatError: %s", err))
		return
	}

	list, err := lego.ReadList(string(body))
	if err != nil {
		writeBadRequest(w, fmt.Sprintf("InvalidVocabFileFormatError: %s", err))
		return
	}

	h.store.SetVocabList(token, list.Words, list.Text)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "Vocab list received.")
}

func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	token := ClientToken(w, r)

	words, ok := h.store.VocabList(token)
	if !ok {
		writeBadRequest(w, "Vocab list has not been provided.")
		return
	}

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeBadRequest(w, fmt.Sprintf("settings body must be a JSON object: %s", err))
		return
	}

	settings, err := rogo.ParseSettings(raw)
	if err != nil {
		writeBadRequest(w, fmt.Sprintf("The settings provided are not valid: %s (InvalidSettingsError)", err))
		return
	}

	result, err := h.store.Draw(token, func() (any, error) {
		return h.asker.GenerateQuestions(settings, words)
	})
	if err != nil {
		if _, ok := err.(*rogo.NoQuestionsError); ok {
			writeBadRequest(w, fmt.Sprintf("NoQuestionsError: %s", err))
			return
		}
		writeInternalError(w, err)
		return
	}

	questions := result.([]rogo.Question)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(questions); err != nil {
		log.Printf("encode error: %v", err)
	}
}
