package eventbrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"carevents-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

// EventDetail fetches the full event object for `id`, expanded with its
// venue and ticket availability.
func (c *Client) EventDetail(ctx context.Context, id string) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "client:EventDetail")
	defer span.End()

	res, err := c.Api.R().
		SetContext(ctx).
		SetQueryParam("expand", "venue,ticket_availability").
		Get(fmt.Sprintf("/v3/events/%s/", id))
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch event detail")
		return nil, err
	}
	if res.IsError() {
		err = fmt.Errorf("event detail request: status %d", res.StatusCode())
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var detail map[string]any
	err = json.Unmarshal(res.Body(), &detail)
	if err != nil {
		span.SetStatus(codes.Error, "failed to unmarshal event detail")
		return nil, err
	}
	return detail, nil
}

// DescriptionBody fetches the listing description of an event and
// returns it as plain text.
func (c *Client) DescriptionBody(ctx context.Context, id string) (string, error) {
	ctx, span := tracer.Start(ctx, "client:DescriptionBody")
	defer span.End()

	res, err := c.Api.R().
		SetContext(ctx).
		SetQueryParam("purpose", "listing").
		Get(fmt.Sprintf("/v3/events/%s/structured_content/", id))
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch structured content")
		return "", err
	}
	if res.IsError() {
		err = fmt.Errorf("structured content request: status %d", res.StatusCode())
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	var payload struct {
		Modules []struct {
			Data struct {
				Body struct {
					Text string `json:"text"`
				} `json:"body"`
			} `json:"data"`
		} `json:"modules"`
	}
	err = json.Unmarshal(res.Body(), &payload)
	if err != nil {
		span.SetStatus(codes.Error, "failed to unmarshal structured content")
		return "", err
	}

	var htmlBody strings.Builder
	for _, module := range payload.Modules {
		htmlBody.WriteString(module.Data.Body.Text)
	}

	// description bodies are html fragments, scoring wants plain text
	doc, err := goquery.NewDocumentFromReader(bytes.NewBufferString(htmlBody.String()))
	if err != nil {
		return htmlBody.String(), nil
	}
	return htmlutil.CleanText(doc.Text()), nil
}
