package boutiques

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func jsonDecode(t *testing.T, src string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(src), &v))
	return v
}
