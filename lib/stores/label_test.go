package stores

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsersFromLabel(t *testing.T) {
	testCases := []struct {
		label string
		users uint32
		ok    bool
		fails bool
	}{
		{label: "42 users", users: 42, ok: true},
		{label: "0 users", users: 0, ok: true},
		{label: "  42  users  ", users: 42, ok: true},
		{label: "users", ok: false},
		{label: "", ok: false},
		{label: "more than 10 users", ok: false},
		{label: "10,000 users", fails: true},
		{label: "-5 users", fails: true},
		{label: "4294967295 users", users: 4294967295, ok: true},
		{label: "4294967296 users", fails: true},
	}

	for _, test := range testCases {
		users, ok, err := UsersFromLabel(test.label)
		if test.fails {
			require.Error(t, err, "label: %q", test.label)
			continue
		}
		require.NoError(t, err, "label: %q", test.label)
		require.Equal(t, test.ok, ok, "label: %q", test.label)
		require.Equal(t, test.users, users, "label: %q", test.label)
	}
}
