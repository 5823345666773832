package badges

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"extbadges/lib/stores"
	"extbadges/lib/telemetry"

	"github.com/stretchr/testify/require"
)

const chromePage = `<html><body><noscript>
	<span title="42 users">42 users</span>
</noscript></body></html>`

const mozillaPage = `<html><body>
<dl class="MetadataCard-list">
	<dt class="MetadataCard-title">Users</dt><dd>58</dd>
</dl>
</body></html>`

const brokenChromePage = `<html><body>no fallback here</body></html>`

// fakeFetcher serves canned pages by url, any url it doesn't know
// fails like a dead connection would.
func fakeFetcher(pages map[string]string) Fetcher {
	return func(ctx context.Context, url string) (string, error) {
		page, ok := pages[url]
		if !ok {
			return "", fmt.Errorf("connection refused: %s", url)
		}
		return page, nil
	}
}

func writeBadgesToml(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "badges.toml")
	err := os.WriteFile(path, []byte(contents), 0644)
	require.NoError(t, err)
	return path
}

func TestBuildBadgeSumsStores(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:badges")
	defer cleanup()

	service := NewService(Options{}, fakeFetcher(map[string]string{
		"https://chrome.google.com/webstore/detail/abc123": chromePage,
		"https://addons.mozilla.org/en-US/firefox/addon/my-ext/": mozillaPage,
	}))

	svg, total, err := service.BuildBadge(context.Background(), stores.Entry{
		Chrome:  "abc123",
		Mozilla: "my-ext",
	})
	require.NoError(t, err)
	require.Equal(t, uint32(100), total)
	require.Contains(t, svg, "100")
}

func TestBuildBadgeNoStoresConfigured(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:badges")
	defer cleanup()

	service := NewService(Options{}, fakeFetcher(nil))

	svg, total, err := service.BuildBadge(context.Background(), stores.Entry{})
	require.NoError(t, err)
	require.Equal(t, uint32(0), total)
	require.Contains(t, svg, "users")
}

func TestBuildBadgeMissingCountContributesZero(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:badges")
	defer cleanup()

	// mozilla has no metadata card, chrome still counts
	service := NewService(Options{}, fakeFetcher(map[string]string{
		"https://chrome.google.com/webstore/detail/abc123": chromePage,
		"https://addons.mozilla.org/en-US/firefox/addon/my-ext/": "<html><body></body></html>",
	}))

	_, total, err := service.BuildBadge(context.Background(), stores.Entry{
		Chrome:  "abc123",
		Mozilla: "my-ext",
	})
	require.NoError(t, err)
	require.Equal(t, uint32(42), total)
}

func TestRun(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:badges")
	defer cleanup()

	dest := t.TempDir()
	badgesPath := writeBadgesToml(t, `
[foo]
chrome = "abc123"

[empty]
`)

	service := NewService(Options{
		DestDir:    dest,
		BadgesPath: badgesPath,
	}, fakeFetcher(map[string]string{
		"https://chrome.google.com/webstore/detail/abc123": chromePage,
	}))

	results, err := service.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)

	fooSvg, err := os.ReadFile(filepath.Join(dest, "foo.svg"))
	require.NoError(t, err)
	require.Contains(t, string(fooSvg), "42")

	emptySvg, err := os.ReadFile(filepath.Join(dest, "empty.svg"))
	require.NoError(t, err)
	require.Contains(t, string(emptySvg), ">0<")
}

func TestRunContinuesPastFailedEntries(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:badges")
	defer cleanup()

	dest := t.TempDir()
	badgesPath := writeBadgesToml(t, `
[broken]
chrome = "unknown"

[working]
chrome = "abc123"
`)

	service := NewService(Options{
		DestDir:    dest,
		BadgesPath: badgesPath,
	}, fakeFetcher(map[string]string{
		"https://chrome.google.com/webstore/detail/abc123": chromePage,
	}))

	results, err := service.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Equal(t, "broken", results[0].Name)
	require.Error(t, results[0].Err)
	_, err = os.Stat(filepath.Join(dest, "broken.svg"))
	require.True(t, os.IsNotExist(err))

	require.Equal(t, "working", results[1].Name)
	require.NoError(t, results[1].Err)
	_, err = os.Stat(filepath.Join(dest, "working.svg"))
	require.NoError(t, err)
}

func TestRunAbortsOnFatalExtraction(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:badges")
	defer cleanup()

	badgesPath := writeBadgesToml(t, `
[broken]
chrome = "abc123"

[never-reached]
chrome = "abc123"
`)

	service := NewService(Options{
		DestDir:    t.TempDir(),
		BadgesPath: badgesPath,
	}, fakeFetcher(map[string]string{
		"https://chrome.google.com/webstore/detail/abc123": brokenChromePage,
	}))

	_, err := service.Run(context.Background())
	require.Error(t, err)
	require.True(t, stores.IsFatal(err))
}

func TestRunMissingConfig(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:badges")
	defer cleanup()

	service := NewService(Options{
		BadgesPath: filepath.Join(t.TempDir(), "nope.toml"),
	}, fakeFetcher(nil))

	_, err := service.Run(context.Background())
	require.Error(t, err)
}
