package carevents

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"carevents-scraper/lib/scrapers/eventbrite"

	"dario.cat/mergo"
	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/carevents")

// Source is the fetch side of the batch, satisfied by
// *eventbrite.Client.
type Source interface {
	SearchPage(ctx context.Context, searchUrl string, page int) (eventbrite.SearchPage, error)
	EventDetail(ctx context.Context, id string) (map[string]any, error)
	DescriptionBody(ctx context.Context, id string) (string, error)
}

type Options struct {
	Source     Source
	SearchUrls []string
	StartPage  int
	MaxPages   int
	// white term count a description needs before a grey event is
	// promoted
	WhiteScoreThreshold int
	// when set, still-undecided grey events ship with the car events
	// instead of going to the review file
	IncludeGrey bool
	// pause between page fetches, a little jitter is added on top
	CrawlDelay time.Duration
}

type Stats struct {
	PagesScanned int
	Discovered   int
	Promoted     int
	Skipped      int
	White        int
	Grey         int
}

type Result struct {
	// car events, in the order they were normalized
	Events []Event
	// undecided events kept aside for review
	GreyEvents []Event
	// deduplicated source records behind Events, for the raw dump
	RawRecords []RawEventRecord
	Stats      Stats
}

// Run executes one full batch: scan the search pages, filter to car
// events, rescue decisively-car grey events by their descriptions,
// deduplicate, enrich each record with its API detail and normalize.
// page-level fetch failures are aggregated into the returned error but
// do not abort the batch.
func Run(ctx context.Context, opts Options) (Result, error) {
	ctx, span := tracer.Start(ctx, "collector:Run")
	defer span.End()

	var white, grey []RawEventRecord
	var errList []error
	stats := Stats{}

	for _, searchUrl := range opts.SearchUrls {
		slog.InfoContext(ctx, "scanning search url", "url", searchUrl)

		for page := opts.StartPage; page < opts.MaxPages; page++ {
			if ctx.Err() != nil {
				return Result{}, ctx.Err()
			}

			sp, err := opts.Source.SearchPage(ctx, searchUrl, page)
			if err != nil {
				slog.ErrorContext(ctx, "failed to scrape search page", "url", searchUrl, "page", page, "err", err)
				errList = append(errList, err)
				break
			}
			if sp.LastPage {
				break
			}
			stats.PagesScanned++
			stats.Discovered += len(sp.Results)

			w, g := Partition(sp.Results)
			white = append(white, w...)
			grey = append(grey, g...)
			slog.InfoContext(ctx, "page partitioned", "page", page, "white", len(w), "grey", len(g))

			crawlWait(ctx, opts.CrawlDelay)
		}
	}

	white, grey, promoted := rescueGrey(ctx, opts, white, grey)
	stats.Promoted = promoted

	if opts.IncludeGrey {
		white = append(white, grey...)
		grey = nil
	}

	white = dedupeById(white)
	grey = dedupeById(grey)

	events, skipped := convert(ctx, opts, white)
	greyEvents, greySkipped := convert(ctx, opts, grey)
	stats.Skipped = skipped + greySkipped
	stats.White = len(events)
	stats.Grey = len(greyEvents)

	if len(errList) > 0 {
		span.SetStatus(codes.Error, "some pages failed to scrape")
	}

	return Result{
		Events:     events,
		GreyEvents: greyEvents,
		RawRecords: white,
		Stats:      stats,
	}, errors.Join(errList...)
}

// second pass: a grey event whose description scores decisively
// car-related moves to the white list.
func rescueGrey(ctx context.Context, opts Options, white, grey []RawEventRecord) ([]RawEventRecord, []RawEventRecord, int) {
	ctx, span := tracer.Start(ctx, "collector:rescueGrey")
	defer span.End()

	var remaining []RawEventRecord
	promoted := 0

	for _, record := range grey {
		id := optString(record, "id")
		if id == nil {
			remaining = append(remaining, record)
			continue
		}

		description, err := opts.Source.DescriptionBody(ctx, *id)
		if err != nil {
			slog.WarnContext(ctx, "failed to fetch description, leaving on grey list", "id", *id, "err", err)
			remaining = append(remaining, record)
			continue
		}

		if PromoteGrey(description, opts.WhiteScoreThreshold) {
			slog.InfoContext(ctx, "grey event promoted", "id", *id, "name", eventName(record))
			white = append(white, record)
			promoted++
			continue
		}
		remaining = append(remaining, record)
	}

	return white, remaining, promoted
}

// dedupeById drops records repeating an already-seen id, keeping
// first-seen order. ids only dedupe within this one run.
func dedupeById(records []RawEventRecord) []RawEventRecord {
	seen := map[string]bool{}
	var out []RawEventRecord
	for _, record := range records {
		id := optString(record, "id")
		if id != nil {
			if seen[*id] {
				continue
			}
			seen[*id] = true
		}
		out = append(out, record)
	}
	return out
}

// convert enriches each record with its API detail (the search record
// wins on conflicts, the detail fills in start/end/venue) and
// normalizes it. unusable records are skipped, never fatal.
func convert(ctx context.Context, opts Options, records []RawEventRecord) ([]Event, int) {
	ctx, span := tracer.Start(ctx, "collector:convert")
	defer span.End()

	var events []Event
	skipped := 0

	for _, record := range records {
		if record != nil {
			if id := optString(record, "id"); id != nil {
				detail, err := opts.Source.EventDetail(ctx, *id)
				if err != nil {
					slog.WarnContext(ctx, "failed to fetch event detail", "id", *id, "err", err)
				} else if err := mergo.Merge(&record, detail); err != nil {
					slog.WarnContext(ctx, "failed to merge event detail", "id", *id, "err", err)
				}
			}
		}

		event, err := Normalize(record)
		if err != nil {
			slog.WarnContext(ctx, "skipping unusable record", "err", err)
			skipped++
			continue
		}
		events = append(events, event)
	}

	return events, skipped
}

func crawlWait(ctx context.Context, delay time.Duration) {
	if delay <= 0 {
		return
	}
	jitterMs, err := random.IntRange(0, 1000)
	if err != nil {
		jitterMs = 0
	}

	timer := time.NewTimer(delay + time.Duration(jitterMs)*time.Millisecond)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
