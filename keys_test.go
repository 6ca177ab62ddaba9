package junction_test

import (
	"testing"

	"github.com/junction-http/junction"
	"github.com/stretchr/testify/require"
)

func TestKeyString(t *testing.T) {
	require.Equal(t, "junction context key: DispatchIDKey", junction.DispatchIDKey.String())
	require.Equal(t, "junction context key: RequestIDKey", junction.RequestIDKey.String())
}
