package middleware_test

import (
	"bytes"
	"encoding/json"
	"log"
	"log/slog"
	"net/http"
	"testing"

	"github.com/junction-http/junction"
	"github.com/junction-http/junction/event"
	"github.com/junction-http/junction/logger"
	"github.com/junction-http/junction/middleware"
	"github.com/junction-http/junction/route"
	"github.com/stretchr/testify/require"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.NotNil(t, actual)

	// Arrange
	b := new(bytes.Buffer)
	ls := logger.New(logger.WithLogger(log.New(b, "", 0)), logger.WithLevel(logger.LogLevelInfo))
	r, c := newDispatch(t, "get", "/hitting/the/junction?param=true&password=hunter2")

	// Act
	res, err := middleware.LogRequest(ls)(r, c)

	// Assert: request passes, password masked
	require.Nil(t, err)
	require.Nil(t, res)
	require.Contains(t, b.String(), "GET /hitting/the/junction")
	require.Contains(t, b.String(), "param=true")
	require.Contains(t, b.String(), "password="+junction.LogMaskVal)
	require.NotContains(t, b.String(), "hunter2")
}

func TestLogDispatches(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	listener := middleware.LogDispatches(slog.New(slog.NewJSONHandler(b, nil)))

	req, err := route.NormalizeRequest(junction.Request{Method: "put", URL: "/trailhead?password=hunter2"})
	require.Nil(t, err)
	c := route.NormalizeContext(junction.Asynchronous, nil)

	// Act
	listener(event.Event{
		Kind:     event.After,
		Request:  req,
		Response: &junction.Response{Status: http.StatusOK, Body: []byte("test")},
		Context:  c,
	})

	// Assert
	var actual middleware.LogDispatchRecord
	require.Nil(t, json.Unmarshal(b.Bytes(), &actual))
	require.Equal(t, middleware.LogDispatchRecord{
		BodySize:   4,
		DispatchID: c.ID,
		Execution:  junction.Asynchronous.String(),
		Method:     http.MethodPut,
		Status:     http.StatusOK,
		URI:        "/trailhead?password=" + junction.LogMaskVal,
	}, actual)
}

func TestLogDispatchesSkipsPartialEvents(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	listener := middleware.LogDispatches(slog.New(slog.NewJSONHandler(b, nil)))

	// Act
	listener(event.Event{Kind: event.Before, Request: &junction.Request{}})

	// Assert
	require.Empty(t, b.String())
}
