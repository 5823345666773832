package stores

import (
	"strconv"
	"strings"
)

// UsersFromLabel parses a user count out of a label of the exact shape
// "<count> users": two whitespace-separated tokens where the first is
// a plain base-10 integer. Grouping separators ("10,000") and
// localized digits are not supported.
//
// ok is false with a nil error when the label doesn't have two tokens,
// in which case the caller should move on to its next candidate. A
// label with the right shape but an unparsable count returns an error.
func UsersFromLabel(label string) (count uint32, ok bool, err error) {
	parts := strings.Fields(label)
	if len(parts) != 2 {
		return 0, false, nil
	}

	users, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return 0, false, err
	}
	return uint32(users), true, nil
}
