package fetch

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"time"

	"extbadges/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("extbadges/lib/fetch")

var client = newClient()

func newClient() *resty.Client {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		panic(err)
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "extbadges/fetch")

	return client
}

func requestCounter() (metric.Int64Counter, error) {
	return meter.Int64Counter(
		"fetch.requests",
		metric.WithDescription("outbound store page requests by outcome"),
	)
}

func count(ctx context.Context, outcome string) {
	counter, err := requestCounter()
	if err != nil {
		return
	}
	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

// Page performs a single GET and returns the response body as text.
// Transport failures and non-2xx statuses are both errors.
func Page(ctx context.Context, url string) (string, error) {
	res, err := client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		count(ctx, "transport_error")
		return "", err
	}
	if res.IsError() {
		count(ctx, "http_error")
		return "", fmt.Errorf("GET %s: %s", url, res.Status())
	}

	count(ctx, "ok")
	return res.String(), nil
}
