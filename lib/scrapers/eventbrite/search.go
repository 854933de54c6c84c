package eventbrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"carevents-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

type SearchPage struct {
	Results []map[string]any
	// true when the page reports no more search results
	LastPage bool
}

// SearchPage fetches page `page` of a listing search url (the url must
// end with its `?page=` query prefix) and extracts the embedded result
// records.
func (c *Client) SearchPage(ctx context.Context, searchUrl string, page int) (SearchPage, error) {
	ctx, span := tracer.Start(ctx, "client:SearchPage")
	defer span.End()

	res, err := c.Web.R().
		SetContext(ctx).
		Get(searchUrl + strconv.Itoa(page))
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch search page")
		return SearchPage{}, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse search page html")
		return SearchPage{}, err
	}

	if isLastPage(doc) {
		return SearchPage{LastPage: true}, nil
	}

	results, err := extractSearchResults(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract embedded results")
		return SearchPage{}, err
	}

	slog.DebugContext(ctx, "search page scraped", "url", searchUrl, "page", page, "results", len(results))
	return SearchPage{Results: results}, nil
}

func isLastPage(doc *goquery.Document) bool {
	return strings.Contains(doc.Find("body").Text(), "Nothing matched")
}

const serverDataStart = " window.__SERVER_DATA__ = "
const serverDataEnd = "window.__REACT_QUERY_STATE__"

// search result pages embed their data in a script block that assigns
// window.__SERVER_DATA__; the same block also assigns window.__i18n__,
// which is what distinguishes it from the other scripts on the page.
func extractSearchResults(doc *goquery.Document) ([]map[string]any, error) {
	for _, script := range doc.Find("script").Nodes {
		text := htmlutil.GetText(script)
		if !strings.Contains(text, "window.__i18n__") {
			continue
		}

		start := strings.Index(text, serverDataStart)
		end := strings.Index(text, serverDataEnd)
		if start < 0 || end < 0 {
			continue
		}
		raw := text[start+len(serverDataStart) : end]
		raw = strings.TrimSpace(raw)
		raw = strings.TrimSuffix(raw, ";")

		var data struct {
			SearchData struct {
				Events struct {
					Results []map[string]any `json:"results"`
				} `json:"events"`
			} `json:"search_data"`
		}
		err := json.Unmarshal([]byte(raw), &data)
		if err != nil {
			return nil, fmt.Errorf("unmarshal server data: %w", err)
		}
		return data.SearchData.Events.Results, nil
	}

	return nil, fmt.Errorf("could not find a server data script block")
}
