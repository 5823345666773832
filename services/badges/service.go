// Package badges drives one badge generation run: load the entry
// list, query every configured store per entry, sum the user counts
// and write one svg badge per entry.
package badges

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"extbadges/lib/badge"
	"extbadges/lib/configutil"
	"extbadges/lib/fetch"
	"extbadges/lib/stores"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("extbadges/services/badges")

// Fetcher fetches a listing page body, tests stub this out.
type Fetcher func(ctx context.Context, url string) (string, error)

// Options is the read-once configuration of a run.
type Options struct {
	// slept before every outbound request, including the first
	Delay      time.Duration
	DestDir    string
	BadgesPath string
}

type Service struct {
	opts  Options
	fetch Fetcher
}

func NewService(opts Options, fetcher Fetcher) Service {
	if fetcher == nil {
		fetcher = fetch.Page
	}
	return Service{
		opts:  opts,
		fetch: fetcher,
	}
}

// Result is the outcome of one entry within a run.
type Result struct {
	Name  string
	Total uint32
	Err   error
}

// BuildBadge queries every store the entry has an identifier for, in
// the fixed stores.All order, sums the extracted user counts and
// renders the badge. A store that yields no count contributes zero;
// a fetch failure fails the entry.
func (s Service) BuildBadge(ctx context.Context, entry stores.Entry) (string, uint32, error) {
	ctx, span := tracer.Start(ctx, "BuildBadge")
	defer span.End()

	var total uint32
	for _, store := range stores.All {
		id := store.ID(entry)
		if id == "" {
			continue
		}

		time.Sleep(s.opts.Delay)

		page, err := s.fetch(ctx, store.PageURL(id))
		if err != nil {
			return "", 0, fmt.Errorf("%s: %w", store.Kind, err)
		}

		users, found, err := store.Extract(ctx, page)
		if err != nil {
			return "", 0, fmt.Errorf("%s: %w", store.Kind, err)
		}
		if !found {
			slog.WarnContext(ctx, "no user count on listing page", "store", store.Kind, "id", id)
			continue
		}

		total += users
	}
	span.SetAttributes(attribute.Int64("total", int64(total)))

	svg, err := badge.RenderUsers(total)
	if err != nil {
		return "", 0, stores.Fatal{Err: err}
	}
	return svg, total, nil
}

// Run loads the badge entries and writes `<dest>/<name>.svg` for each,
// continuing past entries that fail. Config errors, write errors and
// stores.Fatal extraction errors abort the whole batch.
func (s Service) Run(ctx context.Context) ([]Result, error) {
	entries, err := configutil.ReadConfig[map[string]stores.Entry](s.opts.BadgesPath)
	if err != nil {
		return nil, fmt.Errorf("read badges config %q: %w", s.opts.BadgesPath, err)
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)

	var results []Result
	for _, name := range names {
		slog.InfoContext(ctx, "generating badge", "name", name)

		svg, total, err := s.BuildBadge(ctx, entries[name])
		if err != nil {
			if stores.IsFatal(err) {
				return results, err
			}
			slog.ErrorContext(ctx, "failed to generate badge", "name", name, "err", err)
			results = append(results, Result{Name: name, Err: err})
			continue
		}

		dest := filepath.Join(s.opts.DestDir, name+".svg")
		err = os.WriteFile(dest, []byte(svg), 0644)
		if err != nil {
			return results, fmt.Errorf("write %s: %w", dest, err)
		}

		results = append(results, Result{Name: name, Total: total})
	}

	return results, nil
}
