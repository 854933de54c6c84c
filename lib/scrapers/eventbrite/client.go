// Package eventbrite is a scraping client for eventbrite.com listing
// pages and the v3 developer API.
package eventbrite

import (
	"fmt"
	"net/http/cookiejar"
	"time"

	"carevents-scraper/lib/restyutil"
	"carevents-scraper/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/eventbrite")

const apiBaseUrl = "https://www.eventbriteapi.com"
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Client struct {
	// fetches public search pages, no auth
	Web *resty.Client
	// fetches www.eventbriteapi.com with a bearer token
	Api *resty.Client
}

type ClientOptions struct {
	// developer API key, see
	// https://www.eventbrite.com/platform/api#/introduction/authentication
	Token string
	// optional destination for raw exchange dumps
	InstrumentOutput restyutil.InstrumentOutput
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Token == "" {
		return nil, fmt.Errorf("an eventbrite API token is required")
	}

	web := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	web.SetCookieJar(jar)
	web.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(web.GetClient().Transport)
	web.SetHeader("user-agent", userAgent)
	web.SetTimeout(time.Second * 30)

	api := resty.New()
	api.SetBaseURL(apiBaseUrl)
	api.SetHeader("user-agent", userAgent)
	api.SetAuthToken(opts.Token)
	api.SetTimeout(time.Second * 10)

	telemetry.InstrumentResty(web, "scrapers/eventbrite/web")
	telemetry.InstrumentResty(api, "scrapers/eventbrite/api")
	restyutil.InstrumentClient(web, opts.InstrumentOutput)
	restyutil.InstrumentClient(api, opts.InstrumentOutput)

	return &Client{
		Web: web,
		Api: api,
	}, nil
}
