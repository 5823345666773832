// Package badge renders the user count badge.
package badge

import (
	"strconv"

	"github.com/narqo/go-badge"
)

// accent color behind the count
const messageColor = badge.Color("#007ec6")

// RenderUsers produces a flat-style SVG badge with the fixed "users"
// label and the given total as its message.
func RenderUsers(total uint32) (string, error) {
	svg, err := badge.RenderBytes(
		"users",
		strconv.FormatUint(uint64(total), 10),
		messageColor,
	)
	if err != nil {
		return "", err
	}
	return string(svg), nil
}
