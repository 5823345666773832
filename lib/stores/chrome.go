package stores

import (
	"context"
	"fmt"
	"strings"

	"extbadges/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var ErrNoscriptMissing = fmt.Errorf("chrome web store page has no noscript fallback")

func chromePageURL(id string) string {
	return fmt.Sprintf("https://chrome.google.com/webstore/detail/%s", id)
}

const (
	noscriptOpen  = "<noscript>"
	noscriptClose = "</noscript>"
)

// ExtractChromeUsers pulls the user count out of a chrome web store
// listing page. The interactive page is rendered client-side, the
// count only exists in the static markup inside the noscript fallback,
// as a span whose title attribute duplicates its own text
// ("<count> users").
//
// A page without a noscript section fails with a Fatal error: it means
// the store has changed its markup and every remaining entry would hit
// the same wall.
func ExtractChromeUsers(ctx context.Context, page string) (uint32, bool, error) {
	ctx, span := tracer.Start(ctx, "ExtractChromeUsers")
	defer span.End()

	start := strings.Index(page, noscriptOpen)
	end := strings.LastIndex(page, noscriptClose)
	if start < 0 || end < 0 {
		span.SetStatus(codes.Error, ErrNoscriptMissing.Error())
		return 0, false, Fatal{Err: ErrNoscriptMissing}
	}

	fallback := page[start+len(noscriptOpen) : end]
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fallback))
	if err != nil {
		return 0, false, err
	}

	for _, node := range doc.Find("span").Nodes {
		title := ""
		hasTitle := false
		for _, a := range node.Attr {
			if a.Key == "title" {
				title = a.Val
				hasTitle = true
				break
			}
		}
		if !hasTitle || title != htmlutil.GetText(node) {
			continue
		}

		users, ok, err := UsersFromLabel(title)
		if err != nil {
			// a count-shaped label that doesn't parse means the
			// format changed, scanning further won't help
			return 0, false, nil
		}
		if !ok {
			continue
		}

		span.SetAttributes(attribute.Int64("users", int64(users)))
		return users, true, nil
	}

	return 0, false, nil
}
