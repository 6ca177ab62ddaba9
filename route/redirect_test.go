package route_test

import (
	"net/http"
	"testing"

	"github.com/junction-http/junction"
	"github.com/junction-http/junction/route"
	"github.com/stretchr/testify/require"
)

func redirectRes(status int, loc string) *junction.Response {
	res := &junction.Response{Status: status, Header: make(http.Header)}
	if loc != "" {
		res.Header.Set("Location", loc)
	}

	return res
}

func TestIsRedirect(t *testing.T) {
	for _, tc := range []struct {
		name string
		res  *junction.Response
		want bool
	}{
		{"OK", redirectRes(http.StatusOK, ""), false},
		{"Not-Modified", redirectRes(http.StatusNotModified, "/x"), false},
		{"Moved-No-Location", redirectRes(http.StatusMovedPermanently, ""), false},
		{"Moved", redirectRes(http.StatusMovedPermanently, "/x"), true},
		{"Found", redirectRes(http.StatusFound, "/x"), true},
		{"See-Other", redirectRes(http.StatusSeeOther, "/x"), true},
		{"Temporary", redirectRes(http.StatusTemporaryRedirect, "/x"), true},
		{"Permanent", redirectRes(http.StatusPermanentRedirect, "/x"), true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, route.IsRedirect(tc.res))
		})
	}
}

func TestFollowUpRequest(t *testing.T) {
	for _, tc := range []struct {
		name       string
		method     string
		status     int
		loc        string
		wantMethod string
		wantURL    string
		wantBody   bool
	}{
		{"Get-Found", "get", http.StatusFound, "/next", http.MethodGet, "https://example.com/next", true},
		{"Relative", "get", http.StatusFound, "next", http.MethodGet, "https://example.com/old/next", true},
		{"Absolute", "get", http.StatusFound, "https://other.example.com/n", http.MethodGet, "https://other.example.com/n", true},
		{"See-Other-Post", "post", http.StatusSeeOther, "/next", http.MethodGet, "https://example.com/next", false},
		{"See-Other-Delete", "delete", http.StatusSeeOther, "/next", http.MethodGet, "https://example.com/next", false},
		{"Moved-Post", "post", http.StatusMovedPermanently, "/next", http.MethodGet, "https://example.com/next", false},
		{"Found-Post", "post", http.StatusFound, "/next", http.MethodGet, "https://example.com/next", false},
		{"Found-Put-Preserved", "put", http.StatusFound, "/next", http.MethodPut, "https://example.com/next", true},
		{"Temporary-Post-Preserved", "post", http.StatusTemporaryRedirect, "/next", http.MethodPost, "https://example.com/next", true},
		{"Permanent-Post-Preserved", "post", http.StatusPermanentRedirect, "/next", http.MethodPost, "https://example.com/next", true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := newRequest(t, tc.method, "https://example.com/old/page")
			r.Body = []byte("payload")
			r.Header.Set("Content-Type", "text/plain")
			r.Header.Set("X-Keep", "1")

			// Act
			next, err := route.FollowUp(r, redirectRes(tc.status, tc.loc))

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.wantMethod, next.Method)
			require.Equal(t, tc.wantURL, next.URL)
			require.Equal(t, "1", next.Header.Get("X-Keep"))

			if tc.wantBody {
				require.Equal(t, []byte("payload"), next.Body)
				return
			}
			require.Nil(t, next.Body)
			require.Empty(t, next.Header.Get("Content-Type"))
		})
	}
}

func TestFollowUpErrors(t *testing.T) {
	// Arrange
	r := newRequest(t, "get", "/old")

	// Act + Assert
	_, err := route.FollowUp(r, redirectRes(http.StatusFound, ""))
	require.ErrorIs(t, err, junction.ErrMissingData)

	_, err = route.FollowUp(r, redirectRes(http.StatusFound, "/%zz"))
	require.ErrorIs(t, err, junction.ErrNotValid)
}

func TestFollowUpLeavesOriginal(t *testing.T) {
	// Arrange
	r := newRequest(t, "post", "https://example.com/old")
	r.Body = []byte("payload")
	r.Params = map[string]string{"id": "1"}

	// Act
	next, err := route.FollowUp(r, redirectRes(http.StatusSeeOther, "/next"))

	// Assert: the original request is untouched and params do not carry over
	require.Nil(t, err)
	require.Equal(t, http.MethodPost, r.Method)
	require.Equal(t, "https://example.com/old", r.URL)
	require.Equal(t, []byte("payload"), r.Body)
	require.Nil(t, next.Params)
}
