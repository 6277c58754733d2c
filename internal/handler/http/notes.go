package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/amorags/notepad/internal/logger"
	"github.com/amorags/notepad/internal/service"
	"github.com/amorags/notepad/internal/store"
	"github.com/amorags/notepad/internal/utils"
	"github.com/amorags/notepad/models"
)

// Pagination defaults applied when the query string omits skip or limit.
const (
	defaultSkip  = 0
	defaultLimit = 100
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	skip, err := queryIntParam(r, "skip", defaultSkip)
	if err != nil {
		log.Err(err).Msg("invalid skip query parameter")
		http.Error(w, "skip must be an integer", http.StatusUnprocessableEntity)
		return
	}

	limit, err := queryIntParam(r, "limit", defaultLimit)
	if err != nil {
		log.Err(err).Msg("invalid limit query parameter")
		http.Error(w, "limit must be an integer", http.StatusUnprocessableEntity)
		return
	}

	notes, err := h.services.NoteService.ListNotes(ctx, user.UserID, skip, limit)
	if err != nil {
		log.Err(err).Msg("listing notes failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	// An empty page still serialises as a JSON array, not null.
	if notes == nil {
		notes = []models.Note{}
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid note id in path")
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	note, err := h.services.NoteService.GetNote(ctx, user.UserID, noteID)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			log.Err(err).Int64("note_id", noteID).Msg("note not found")
			http.Error(w, "Note not found", http.StatusNotFound)
			return
		}
		log.Err(err).Int64("note_id", noteID).Msg("note lookup failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var payload models.NotePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusUnprocessableEntity)
		return
	}

	note, err := h.services.NoteService.CreateNote(ctx, user.UserID, payload)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			log.Err(err).Msg("invalid note payload")
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.Err(err).Msg("note creation failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	log.Debug().Int64("note_id", note.ID).Msg("note created")

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid note id in path")
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	var payload models.NotePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusUnprocessableEntity)
		return
	}

	note, err := h.services.NoteService.UpdateNote(ctx, user.UserID, noteID, payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid note payload")
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		case errors.Is(err, store.ErrNoteNotFound):
			log.Err(err).Int64("note_id", noteID).Msg("note not found")
			http.Error(w, "Note not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("note_id", noteID).Msg("note update failed")
			http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid note id in path")
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	deleted, err := h.services.NoteService.DeleteNote(ctx, user.UserID, noteID)
	if err != nil {
		log.Err(err).Int64("note_id", noteID).Msg("note deletion failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}
	if !deleted {
		log.Debug().Int64("note_id", noteID).Msg("note not found")
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) noteWordCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid note id in path")
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	note, err := h.services.NoteService.GetNote(ctx, user.UserID, noteID)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			log.Err(err).Int64("note_id", noteID).Msg("note not found")
			http.Error(w, "Note not found", http.StatusNotFound)
			return
		}
		log.Err(err).Int64("note_id", noteID).Msg("note lookup failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.WordCountResponse{
		NoteID:    note.ID,
		WordCount: h.services.NoteService.WordCount(note.Content),
	}, http.StatusOK)
}

// noteIDFromURL extracts the {id} path parameter as an int64.
func noteIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// queryIntParam parses an optional integer query parameter, falling back to
// def when the parameter is absent or empty.
func queryIntParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
