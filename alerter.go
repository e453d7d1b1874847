package main

import (
	"context"
	"errors"
	"time"
)

// ErrAlerterRateLimited is returned when the delivery channel has
// rate limited the alerter and no further alerts can be sent until the
// limit window passes.
var ErrAlerterRateLimited = errors.New("alerter rate limited")

// ErrAlerterDropped is returned when an alert could not be delivered,
// for example when a webhook responds with a non-2xx status.
var ErrAlerterDropped = errors.New("alerter message dropped")

// AlertMessage is the queued notification for an endpoint health
// state transition.
type AlertMessage struct {
	EndpointName string    `json:"endpoint_name"`
	StatusCode   int       `json:"status_code"`
	Reason       string    `json:"reason"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Alerter delivers a notification when an endpoint goes down or
// recovers. Implementations cover different channels (webhooks, chat
// integrations, and so on).
type Alerter interface {
	// Send delivers one alert. The context controls request lifetime
	// and cancellation.
	Send(ctx context.Context, alert AlertMessage) error
}
