package badge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderUsers(t *testing.T) {
	svg, err := RenderUsers(3216)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(svg, "<svg"))
	require.Contains(t, svg, "users")
	require.Contains(t, svg, "3216")
}

func TestRenderUsersZero(t *testing.T) {
	svg, err := RenderUsers(0)
	require.NoError(t, err)
	require.Contains(t, svg, ">0<")
}
