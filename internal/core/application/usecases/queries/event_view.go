package queries

import (
	"time"

	"parceltrack/internal/core/domain/model/tracking"
)

// EventView is the read-side projection of one tracking ledger entry.
type EventView struct {
	Sequence      int64
	TrackingID    string
	Timestamp     time.Time
	Location      string
	StatusLabel   string
	Actor         string
	VehicleID     string
	WarehouseID   string
	Kind          string
	ETA           time.Time
	ExceptionKind string
}

func toEventView(event *tracking.Event) EventView {
	return EventView{
		Sequence:      event.Sequence(),
		TrackingID:    event.TrackingID().String(),
		Timestamp:     event.Timestamp(),
		Location:      event.Location(),
		StatusLabel:   event.StatusLabel(),
		Actor:         event.Actor(),
		VehicleID:     event.VehicleID(),
		WarehouseID:   event.WarehouseID(),
		Kind:          string(event.Kind()),
		ETA:           event.ETA(),
		ExceptionKind: event.ExceptionKind(),
	}
}

func toEventViews(events []*tracking.Event) []EventView {
	views := make([]EventView, 0, len(events))
	for _, event := range events {
		views = append(views, toEventView(event))
	}
	return views
}
