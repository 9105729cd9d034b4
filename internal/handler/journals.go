package handler

import "net/http"

type journalRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateJournalEntry handles POST /journal
func (h *Handler) CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req journalRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	entry, err := h.svc.CreateJournalEntry(userID, req.Title, req.Content)
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

// ListJournalEntries handles GET /journal
func (h *Handler) ListJournalEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	entries, err := h.svc.ListJournalEntries(userID)
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// UpdateJournalEntry handles PUT /journal/{id}
func (h *Handler) UpdateJournalEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}
	var req journalRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	entry, err := h.svc.UpdateJournalEntry(userID, id, req.Title, req.Content)
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// DeleteJournalEntry handles DELETE /journal/{id}
func (h *Handler) DeleteJournalEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if err := h.svc.DeleteJournalEntry(userID, id); err != nil {
		h.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportJournal handles GET /export/journal
func (h *Handler) ExportJournal(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	out, err := h.svc.ExportJournalXML(userID)
	if err != nil {
		h.handleError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Content-Disposition", `attachment; filename="journal.xml"`)
	w.Write(out)
}
