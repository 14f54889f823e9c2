package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/flowchart/pkg/buildinfo"
	"github.com/matzehuels/flowchart/pkg/element"
	"github.com/matzehuels/flowchart/pkg/errors"
	"github.com/matzehuels/flowchart/pkg/flowchart"
	fio "github.com/matzehuels/flowchart/pkg/io"
	"github.com/matzehuels/flowchart/pkg/surface"
)

// hostID is the id of the element charts are rendered under.
const hostID = "preview"

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type chartsResponse struct {
	Charts []string `json:"charts"`
}

// EventResponse reports the outcome of a dispatched event.
type EventResponse struct {
	Chart   string       `json:"chart"`
	Node    string       `json:"node"`
	Event   string       `json:"event"`
	Fired   int          `json:"fired"`
	Actions []fio.Action `json:"actions"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	names, err := s.chartNames()
	if err != nil {
		writeError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, chartsResponse{Charts: names})
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	svg, err := s.render(r.Context(), name, nil)
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := svg.Bytes()
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "serialize chart"))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	nodeID := chi.URLParam(r, "id")
	event := chi.URLParam(r, "event")

	actions := []fio.Action{}
	svg, err := s.render(r.Context(), name, func(a fio.Action) { actions = append(actions, a) })
	if err != nil {
		writeError(w, err)
		return
	}

	var target *surface.Element
	for _, n := range svg.Find("g", "node") {
		if flowchart.NodeID(n) == nodeID {
			target = n
			break
		}
	}
	if target == nil {
		writeError(w, errors.New(errors.ErrCodeNotFound, "chart %q has no node %q", name, nodeID))
		return
	}

	fired := target.Dispatch(event)
	s.cfg.Logger.Debug("dispatched event", "chart", name, "node", nodeID, "event", event, "fired", fired)
	writeJSON(w, http.StatusOK, EventResponse{
		Chart:   name,
		Node:    nodeID,
		Event:   event,
		Fired:   fired,
		Actions: actions,
	})
}

// render loads and renders the named chart into a fresh registry.
func (s *Server) render(ctx context.Context, name string, onAction fio.ActionFunc) (*surface.Element, error) {
	path, err := s.chartFile(name)
	if err != nil {
		return nil, err
	}
	def, err := fio.Import(path)
	if err != nil {
		return nil, err
	}

	chart, err := def.Build(element.NewRegistry(), s.cfg.Engine, onAction)
	if err != nil {
		return nil, err
	}
	defer chart.Destroy()
	chart.Logger = s.cfg.Logger

	host := surface.NewDocument("div").Root().SetAttr("id", hostID)
	return chart.Render(ctx, host)
}
