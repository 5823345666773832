package stores

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
)

func mozillaPageURL(id string) string {
	return fmt.Sprintf("https://addons.mozilla.org/en-US/firefox/addon/%s/", id)
}

// ExtractMozillaUsers pulls the user count out of an addons.mozilla.org
// listing page. The page carries a metadata card rendered as a
// description list: a dt title cell reading "Users" paired with a dd
// value cell holding the bare count.
//
// The dd text is parsed without trimming, exactly as the store prints
// it. A "Users" title with no dd sibling is skipped in favor of later
// candidates; an unparsable dd ends the scan with no count.
func ExtractMozillaUsers(ctx context.Context, page string) (uint32, bool, error) {
	ctx, span := tracer.Start(ctx, "ExtractMozillaUsers")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return 0, false, err
	}

	var users uint32
	found := false

	titles := doc.Find("dl.MetadataCard-list dt.MetadataCard-title")
	titles.EachWithBreak(func(_ int, dt *goquery.Selection) bool {
		if strings.TrimSpace(dt.Text()) != "Users" {
			return true
		}

		dd := dt.Parent().ChildrenFiltered("dd").First()
		if dd.Length() == 0 {
			return true
		}

		parsed, err := strconv.ParseUint(dd.Text(), 10, 32)
		if err != nil {
			return false
		}

		users = uint32(parsed)
		found = true
		return false
	})

	if found {
		span.SetAttributes(attribute.Int64("users", int64(users)))
	}
	return users, found, nil
}
