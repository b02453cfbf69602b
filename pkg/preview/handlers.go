package preview

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path"

	tterrors "github.com/vango-dev/tooltip/internal/errors"
	"github.com/vango-dev/tooltip/pkg/document"
)

// errorBody is the JSON body of every error response.
type errorBody struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	html, rev, err := s.HTML()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(Page(html, rev, true)))
}

func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	html, rev, err := s.HTML()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Tooltip-Revision", formatRevision(rev))
	w.Write([]byte(html))
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	doc, err := document.Read(http.MaxBytesReader(w, r.Body, document.MaxSize+1))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.Load(r.Context(), doc); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeState(w)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := s.Clear(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, document.MaxSize))
	if err != nil {
		s.writeError(w, r, tterrors.New("T020").Wrap(err))
		return
	}
	partial, err := document.ParseConfig(data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.Configure(r.Context(), partial); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.mu.Lock()
	cfg := s.content.Config()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.snapshots == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody{
			Code:    "T030",
			Message: "Snapshot store failed",
			Detail:  "no snapshot store configured",
		})
		return
	}

	html, rev, err := s.HTML()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		name = snapshotName(rev)
	} else if name != path.Base(name) {
		writeJSON(w, http.StatusBadRequest, errorBody{
			Code:    "T030",
			Message: "Snapshot store failed",
			Detail:  "snapshot name must not contain a path",
		})
		return
	}

	var location string
	err = s.recorder.Snapshot(r.Context(), s.snapshots.Kind(), func(ctx context.Context) error {
		var putErr error
		location, putErr = s.snapshots.Put(ctx, name, []byte(Page(html, rev, false)))
		return putErr
	})
	if err != nil {
		s.writeError(w, r, tterrors.FromError(err, "T030"))
		return
	}

	s.logger.Info("snapshot published", "location", location, "revision", rev)
	writeJSON(w, http.StatusCreated, map[string]any{
		"location": location,
		"revision": rev,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"revision": s.container.Revision(),
		"clients":  s.Clients(),
	})
}

func (s *Server) writeState(w http.ResponseWriter) {
	s.mu.Lock()
	state := s.content.State()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"revision": s.container.Revision(),
		"strategy": state.StrategyName,
		"hasModel": state.HasModel(),
	})
}

// writeError maps the error's code to a status and writes it as JSON.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var te *tterrors.TooltipError
	if !errors.As(err, &te) {
		te = tterrors.FromError(err, "")
	}
	status := statusFor(te.Code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	} else {
		s.logger.Debug("request rejected", "path", r.URL.Path, "code", te.Code, "error", err)
	}

	body := errorBody{
		Code:       te.Code,
		Message:    te.Message,
		Detail:     te.Detail,
		Suggestion: te.Suggestion,
	}
	if body.Detail == "" && te.Wrapped != nil {
		body.Detail = te.Wrapped.Error()
	}
	writeJSON(w, status, body)
}

func statusFor(code string) int {
	switch code {
	case "T020", "T040":
		return http.StatusBadRequest
	case "T001", "T002", "T003", "T010", "T011":
		return http.StatusUnprocessableEntity
	case "T030":
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func configError(err error) error {
	return tterrors.New("T010").WithDetail(err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
