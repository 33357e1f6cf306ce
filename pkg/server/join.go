package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/vsel/internal/errors"
	"github.com/vango-dev/vsel/pkg/joinmetrics"
	"github.com/vango-dev/vsel/pkg/plan"
	"github.com/vango-dev/vsel/pkg/render"
	"github.com/vango-dev/vsel/pkg/selection"
	"github.com/vango-dev/vsel/pkg/source"
)

// Endpoint labels used in metrics and spans.
const (
	endpointJoin   = "/v1/join"
	endpointJoinWS = "/v1/join/ws"
)

// JoinRequest is the body of a join request.
type JoinRequest struct {
	// ID is echoed in WebSocket responses.
	ID string `json:"id,omitempty"`

	// HTML is the document the plan runs against.
	HTML string `json:"html"`

	// Plan is the join plan.
	Plan *plan.Plan `json:"plan"`

	// Pretty indents the rendered document.
	Pretty bool `json:"pretty,omitempty"`
}

// Message is a WebSocket response. Exactly one of Report and Error is set.
type Message struct {
	ID     string       `json:"id,omitempty"`
	Report *plan.Report `json:"report,omitempty"`
	Error  *ErrorBody   `json:"error,omitempty"`
}

// execute runs one join request.
func (s *Server) execute(ctx context.Context, req *JoinRequest) (*plan.Report, error) {
	if req.Plan == nil {
		return nil, errors.New("E160").
			WithDetail("The request has no plan.")
	}
	if err := req.Plan.Validate(); err != nil {
		return nil, err
	}
	doc, err := source.ParseString(req.HTML)
	if err != nil {
		return nil, err
	}
	return plan.Run(doc, req.Plan,
		plan.WithSelectionOptions(
			selection.WithLogger(s.logger),
			selection.WithObserver(s.metrics),
			selection.WithObserver(joinmetrics.SpanObserver(ctx)),
		),
		plan.WithRenderer(render.RendererConfig{Pretty: req.Pretty}),
	)
}

// traced wraps execute with a span and request metrics.
func (s *Server) traced(ctx context.Context, endpoint string, req *JoinRequest, decodeErr error) (*plan.Report, error) {
	start := time.Now()
	ctx, span := s.tracing.Start(ctx, "vsel.join", attribute.String("vsel.endpoint", endpoint))
	defer span.End()

	var report *plan.Report
	err := decodeErr
	if err == nil {
		span.SetAttributes(attribute.Int("vsel.steps", stepCount(req)))
		report, err = s.execute(ctx, req)
	}

	joinmetrics.Finish(span, err)
	s.metrics.ObserveRequest(endpoint, statusLabel(err), time.Since(start))
	if err != nil {
		s.logger.Debug("join failed", "endpoint", endpoint, "error", err)
	}
	return report, err
}

func stepCount(req *JoinRequest) int {
	if req.Plan == nil {
		return 0
	}
	return len(req.Plan.Steps)
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.config.Server.MaxBodyBytes)
	var req JoinRequest
	decodeErr := decodeRequest(json.NewDecoder(body).Decode(&req))

	report, err := s.traced(r.Context(), endpointJoin, &req, decodeErr)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func decodeRequest(err error) error {
	if err == nil {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return errors.New("E161").Wrap(err)
	}
	return errors.New("E160").Wrap(err)
}

func (s *Server) handleJoinWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(s.config.Server.MaxBodyBytes)
	ctx := r.Context()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("websocket read failed", "error", err)
			}
			return
		}

		var req JoinRequest
		decodeErr := decodeRequest(json.Unmarshal(msg, &req))

		reply := Message{ID: req.ID}
		report, err := s.traced(ctx, endpointJoinWS, &req, decodeErr)
		if err != nil {
			reply.Error = errorBody(err)
		} else {
			reply.Report = report
		}

		if err := conn.WriteJSON(reply); err != nil {
			s.logger.Warn("websocket write failed", "error", err)
			return
		}
	}
}
