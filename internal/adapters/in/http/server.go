package http

import (
	"errors"
	"net/http"
	"time"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the read side of the tracking engine over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	historyHandler queries.ShipmentHistoryQueryHandler
	statusHandler  queries.CurrentStatusQueryHandler
	searchHandler  queries.SearchTrackingEventsQueryHandler
	healthHandler  queries.LedgerHealthQueryHandler
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(
	historyHandler queries.ShipmentHistoryQueryHandler,
	statusHandler queries.CurrentStatusQueryHandler,
	searchHandler queries.SearchTrackingEventsQueryHandler,
	healthHandler queries.LedgerHealthQueryHandler,
) *Server {
	return &Server{
		historyHandler: historyHandler,
		statusHandler:  statusHandler,
		searchHandler:  searchHandler,
		healthHandler:  healthHandler,
	}
}

// RegisterRoutes binds all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/api/v1/shipments/:id/history", s.GetShipmentHistory)
	e.GET("/api/v1/shipments/:id/status", s.GetShipmentStatus)
	e.GET("/api/v1/tracking/search", s.SearchTrackingEvents)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// Error is the JSON error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Event is the JSON projection of one tracking ledger entry.
type Event struct {
	Sequence      int64      `json:"sequence"`
	TrackingID    string     `json:"tracking_id"`
	Timestamp     time.Time  `json:"timestamp"`
	Location      string     `json:"location"`
	StatusLabel   string     `json:"status_label"`
	Actor         string     `json:"actor,omitempty"`
	VehicleID     string     `json:"vehicle_id,omitempty"`
	WarehouseID   string     `json:"warehouse_id,omitempty"`
	Kind          string     `json:"kind"`
	ETA           *time.Time `json:"eta,omitempty"`
	ExceptionKind string     `json:"exception_kind,omitempty"`
}

// ShipmentStatus is the latest known state of a shipment.
type ShipmentStatus struct {
	TrackingID  string     `json:"tracking_id"`
	StatusLabel string     `json:"status_label"`
	ETA         *time.Time `json:"eta,omitempty"`
}

// LedgerHealth is the ledger's operational snapshot.
type LedgerHealth struct {
	State             string     `json:"state"`
	EventCount        int        `json:"event_count"`
	ErrorCount        int        `json:"error_count"`
	LastEventAt       *time.Time `json:"last_event_at,omitempty"`
	ConsistencyIssues int        `json:"consistency_issues"`
	Errors            []string   `json:"errors,omitempty"`
}

// GetHealth handles GET /health - reports the ledger's health snapshot.
// The engine keeps answering in DEGRADED and DOWN states, so every snapshot
// is served with status 200.
func (s *Server) GetHealth(ctx echo.Context) error {
	response, err := s.healthHandler.Handle(ctx.Request().Context(), queries.NewLedgerHealthQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to snapshot ledger health",
		})
	}

	body := LedgerHealth{
		State:             response.State,
		EventCount:        response.EventCount,
		ErrorCount:        response.ErrorCount,
		LastEventAt:       optionalTime(response.LastEventAt),
		ConsistencyIssues: response.ConsistencyIssues,
		Errors:            response.Errors,
	}

	return ctx.JSON(http.StatusOK, body)
}

// GetShipmentHistory handles GET /api/v1/shipments/:id/history - returns the
// shipment's tracking events in chronological order. Unknown ids return an
// empty list, matching the public tracking page behavior.
func (s *Server) GetShipmentHistory(ctx echo.Context) error {
	trackingID, err := kernel.TrackingIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking id: " + err.Error(),
		})
	}

	query, err := queries.NewShipmentHistoryQuery(trackingID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid history query: " + err.Error(),
		})
	}

	views, err := s.historyHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve shipment history",
		})
	}

	return ctx.JSON(http.StatusOK, toEvents(views))
}

// GetShipmentStatus handles GET /api/v1/shipments/:id/status - returns the
// latest status label and estimated delivery time.
func (s *Server) GetShipmentStatus(ctx echo.Context) error {
	trackingID, err := kernel.TrackingIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking id: " + err.Error(),
		})
	}

	query, err := queries.NewCurrentStatusQuery(trackingID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status query: " + err.Error(),
		})
	}

	response, err := s.statusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Shipment not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve shipment status",
		})
	}

	return ctx.JSON(http.StatusOK, ShipmentStatus{
		TrackingID:  response.TrackingID,
		StatusLabel: response.StatusLabel,
		ETA:         optionalTime(response.ETA),
	})
}

// SearchTrackingEvents handles GET /api/v1/tracking/search - returns ledger
// events matching the query string filters. All filters are optional and
// combine with AND.
func (s *Server) SearchTrackingEvents(ctx echo.Context) error {
	filter, err := filterFromRequest(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid search filter: " + err.Error(),
		})
	}

	query, err := queries.NewSearchTrackingEventsQuery(filter)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid search query: " + err.Error(),
		})
	}

	views, err := s.searchHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to search tracking events",
		})
	}

	return ctx.JSON(http.StatusOK, toEvents(views))
}

func filterFromRequest(ctx echo.Context) (ports.EventFilter, error) {
	filter := ports.EventFilter{
		TrackingID:       ctx.QueryParam("tracking_id"),
		CustomerID:       ctx.QueryParam("customer_id"),
		LocationContains: ctx.QueryParam("location"),
		VehicleID:        ctx.QueryParam("vehicle_id"),
		WarehouseID:      ctx.QueryParam("warehouse_id"),
	}

	if raw := ctx.QueryParam("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return ports.EventFilter{}, err
		}
		filter.From = from
	}

	if raw := ctx.QueryParam("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return ports.EventFilter{}, err
		}
		filter.To = to
	}

	return filter, nil
}

func toEvents(views []queries.EventView) []Event {
	events := make([]Event, len(views))
	for i, view := range views {
		events[i] = Event{
			Sequence:      view.Sequence,
			TrackingID:    view.TrackingID,
			Timestamp:     view.Timestamp,
			Location:      view.Location,
			StatusLabel:   view.StatusLabel,
			Actor:         view.Actor,
			VehicleID:     view.VehicleID,
			WarehouseID:   view.WarehouseID,
			Kind:          view.Kind,
			ETA:           optionalTime(view.ETA),
			ExceptionKind: view.ExceptionKind,
		}
	}
	return events
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
