package junction_test

import (
	"net/http"
	"testing"

	"github.com/junction-http/junction"
	"github.com/stretchr/testify/require"
)

func TestRequestClone(t *testing.T) {
	// Arrange
	orig := &junction.Request{
		Method: http.MethodPost,
		URL:    "/trailhead",
		Header: http.Header{"Content-Type": []string{"application/json"}},
		Body:   []byte(`{"ok":true}`),
		Fields: map[string]any{"attempt": 1},
		Params: map[string]string{"id": "42"},
	}

	// Act
	dup := orig.Clone()
	dup.Header.Set("Content-Type", "text/plain")
	dup.Fields["attempt"] = 2

	// Assert: headers and fields are independent copies
	require.Equal(t, "application/json", orig.Header.Get("Content-Type"))
	require.Equal(t, 1, orig.Fields["attempt"])

	// Assert: the body is shared, params are not carried over
	require.Same(t, &orig.Body[0], &dup.Body[0])
	require.Nil(t, dup.Params)
}

func TestRequestParam(t *testing.T) {
	r := &junction.Request{Params: map[string]string{"id": "42"}}
	require.Equal(t, "42", r.Param("id"))
	require.Equal(t, "", r.Param("name"))
	require.Equal(t, "", (&junction.Request{}).Param("id"))
}

func TestExecutionValid(t *testing.T) {
	for _, tc := range []struct {
		input junction.Execution
		want  error
	}{
		{junction.Synchronous, nil},
		{junction.Asynchronous, nil},
		{junction.Execution(""), junction.ErrNotValid},
		{junction.Execution("BACKGROUND"), junction.ErrNotValid},
	} {
		t.Run(tc.input.String(), func(t *testing.T) {
			require.ErrorIs(t, tc.input.Valid(), tc.want)
		})
	}
}

func TestContextSetValue(t *testing.T) {
	c := new(junction.Context)
	require.Nil(t, c.Value(junction.RequestIDKey))

	c.Set(junction.RequestIDKey, "abc")
	require.Equal(t, "abc", c.Value(junction.RequestIDKey))
}
