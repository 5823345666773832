// Package stores knows how to turn a store listing identifier into a
// listing page url and how to dig the user count statistic out of the
// listing page markup.
package stores

import (
	"context"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("extbadges/lib/stores")

type Kind string

const (
	Chrome  Kind = "chrome"
	Mozilla Kind = "mozilla"
)

// Entry is one logical extension: a listing identifier per store,
// where an empty string means the store is skipped.
type Entry struct {
	Chrome  string `toml:"chrome" json:"chrome"`
	Mozilla string `toml:"mozilla" json:"mozilla"`
}

// Store binds a store kind to its listing url template and its
// user count extractor.
type Store struct {
	Kind    Kind
	ID      func(e Entry) string
	PageURL func(id string) string
	Extract func(ctx context.Context, page string) (uint32, bool, error)
}

// All lists the supported stores in the order they are queried.
var All = []Store{
	{
		Kind:    Chrome,
		ID:      func(e Entry) string { return e.Chrome },
		PageURL: chromePageURL,
		Extract: ExtractChromeUsers,
	},
	{
		Kind:    Mozilla,
		ID:      func(e Entry) string { return e.Mozilla },
		PageURL: mozillaPageURL,
		Extract: ExtractMozillaUsers,
	},
}
