package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dh-kim/ocr-ledger/constants"
	"github.com/dh-kim/ocr-ledger/internal/repository"
)

type processRequest struct {
	ImagePath string `json:"image_path"`
}

type processResponse struct {
	DraftID  string `json:"draft_id"`
	Status   string `json:"validation_status"`
	LedgerID int64  `json:"ledger_id,omitempty"`
}

// handleProcess runs the pipeline for one image reference, stores the draft
// and, when the verdict allows it, writes the ledger payload.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ImagePath == "" {
		s.writeError(w, http.StatusBadRequest, "image_path is required")
		return
	}

	d := s.pipeline.Run(r.Context(), req.ImagePath)

	if s.drafts != nil {
		if err := s.drafts.Put(d); err != nil {
			s.logger.Error("failed to store draft", "draft_id", d.ID, "error", err)
			s.writeError(w, http.StatusInternalServerError, "storing draft failed")
			return
		}
	}

	resp := processResponse{DraftID: d.ID.String(), Status: string(d.ValidationStatus)}
	if s.ledger != nil && d.ValidationStatus.IsLedgerReady() {
		payload := repository.ToLedgerPayload(d, time.Now())
		id, err := s.ledger.Insert(r.Context(), payload)
		if err != nil {
			s.logger.Error("ledger insert failed", "draft_id", d.ID, "error", err)
		} else {
			resp.LedgerID = id
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid draft id")
		return
	}
	d, err := s.drafts.Get(id)
	if err != nil {
		s.logger.Error("failed to read draft", "draft_id", id, "error", err)
		s.writeError(w, http.StatusInternalServerError, "reading draft failed")
		return
	}
	if d == nil {
		s.writeError(w, http.StatusNotFound, "draft not found")
		return
	}
	s.writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleListDrafts(w http.ResponseWriter, _ *http.Request) {
	drafts, err := s.drafts.List()
	if err != nil {
		s.logger.Error("failed to list drafts", "error", err)
		s.writeError(w, http.StatusInternalServerError, "listing drafts failed")
		return
	}
	s.writeJSON(w, http.StatusOK, drafts)
}

func (s *Server) handleExportDrafts(w http.ResponseWriter, _ *http.Request) {
	drafts, err := s.drafts.List()
	if err != nil {
		s.logger.Error("failed to list drafts", "error", err)
		s.writeError(w, http.StatusInternalServerError, "listing drafts failed")
		return
	}
	data, err := s.exporter.ExportDraftsXLSX(drafts)
	if err != nil {
		s.logger.Error("export failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "export failed")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="drafts.xlsx"`)
	_, _ = w.Write(data)
}

type categoryEntry struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	out := make([]categoryEntry, 0, len(constants.CategoryNames))
	for _, name := range constants.CategoryNames {
		out = append(out, categoryEntry{Code: constants.CategoryCode(name), Name: name})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
