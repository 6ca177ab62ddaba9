package middleware

import (
	"context"
	"log/slog"
	"strings"

	"github.com/junction-http/junction"
	"github.com/junction-http/junction/event"
	"github.com/junction-http/junction/logger"
)

// LogRequest logs the request's method and target using the enclosed
// implementation of logger.Logger, then passes the request along.
//
// LogRequest scrubs the values for the following query keys:
// - password
//
// If ls is nil, [Noop] returns and this middleware does nothing.
func LogRequest(ls logger.Logger) junction.Middleware {
	if ls == nil {
		return Noop
	}

	return func(r *junction.Request, _ *junction.Context) (*junction.Response, error) {
		ls.Info(strings.Join([]string{r.Method, maskedURI(r)}, " "), nil)
		return nil, nil
	}
}

// A LogDispatchRecord is the structured record [LogDispatches] emits
// once per completed loop iteration.
type LogDispatchRecord struct {
	BodySize   int    `json:"body_size"`
	DispatchID string `json:"dispatch_id"`
	Execution  string `json:"execution"`
	Method     string `json:"method"`
	Status     int    `json:"status"`
	URI        string `json:"uri"`
}

// LogDispatches returns an [event.Listener] for [event.After] that
// writes one slog record per response produced, password query values
// masked. Unlike [LogRequest], it sees the response, so status and body
// size ride along.
func LogDispatches(l *slog.Logger) event.Listener {
	return func(e event.Event) {
		if e.Response == nil || e.Request == nil {
			return
		}

		rec := LogDispatchRecord{
			BodySize: len(e.Response.Body),
			Method:   e.Request.Method,
			Status:   e.Response.Status,
			URI:      maskedURI(e.Request),
		}
		if e.Context != nil {
			rec.DispatchID = e.Context.ID
			rec.Execution = e.Context.Execution.String()
		}

		l.LogAttrs(context.Background(), slog.LevelInfo, "dispatch",
			slog.Any(junction.LogKindKey, junction.DispatchLogKind),
			slog.Int("body_size", rec.BodySize),
			slog.String("dispatch_id", rec.DispatchID),
			slog.String("execution", rec.Execution),
			slog.String("method", rec.Method),
			slog.Int("status", rec.Status),
			slog.String("uri", rec.URI),
		)
	}
}

// maskedURI reserializes the request target with sensitive query values
// replaced by [junction.LogMaskVal].
func maskedURI(r *junction.Request) string {
	u, err := r.ParseURL()
	if err != nil {
		return r.URL
	}

	q := u.Query()
	junction.Mask(q, "password")
	u.RawQuery = q.Encode()

	return u.String()
}
