package commands

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"carevents-scraper/lib/configutil"
	"carevents-scraper/lib/restyutil"
	"carevents-scraper/lib/scrapers/eventbrite"
	"carevents-scraper/lib/serviceutil"
	"carevents-scraper/lib/telemetry"
	"carevents-scraper/services/carevents"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type OutputConfig struct {
	Events     string `json:"events"`
	GreyEvents string `json:"grey_events"`
	RawDump    string `json:"raw_dump"`
	EventNames string `json:"event_names"`
}

type Config struct {
	// path to a file holding an eventbrite developer API key
	TokenFile           string       `json:"token_file"`
	SearchUrls          []string     `json:"search_urls"`
	StartPage           int          `json:"start_page"`
	MaxPages            int          `json:"max_pages"`
	WhiteScoreThreshold int          `json:"white_score_threshold"`
	IncludeGrey         bool         `json:"include_grey"`
	CrawlDelaySeconds   int          `json:"crawl_delay_seconds"`
	SaveRawDump         bool         `json:"save_raw_dump"`
	Output              OutputConfig `json:"output"`
}

var defaultSearchUrls = []string{
	"https://www.eventbrite.com/d/united-states/auto-boat-and-air--events/?page=",
	"https://www.eventbrite.com/d/canada/auto-boat-and-air--events/automotive/?page=",
	"https://www.eventbrite.com/d/united-kingdom/auto-boat-and-air--events/automotive/?page=",
	"https://www.eventbrite.com/d/australia/auto-boat-and-air--events/automotive/?page=",
}

func (c *Config) applyDefaults() {
	if c.TokenFile == "" {
		c.TokenFile = "eventbrite_api_key.txt"
	}
	if len(c.SearchUrls) == 0 {
		c.SearchUrls = defaultSearchUrls
	}
	if c.StartPage == 0 {
		c.StartPage = 1
	}
	if c.MaxPages == 0 {
		c.MaxPages = 6
	}
	if c.WhiteScoreThreshold == 0 {
		c.WhiteScoreThreshold = 3
	}
	if c.CrawlDelaySeconds == 0 {
		c.CrawlDelaySeconds = 2
	}
	if c.Output.Events == "" {
		c.Output.Events = "eventbrite_events.json"
	}
	if c.Output.GreyEvents == "" {
		c.Output.GreyEvents = "grey_eventbrite_events.json"
	}
	if c.Output.RawDump == "" {
		c.Output.RawDump = "raw_events.json"
	}
	if c.Output.EventNames == "" {
		c.Output.EventNames = "_event_names.txt"
	}
}

var debugHttpDir *string

func init() {
	debugHttpDir = scrapeCmd.Flags().String("debug-http", "", "A directory to dump raw HTTP exchanges to.")
	rootCmd.AddCommand(scrapeCmd)
}

func createClient(cfg Config) *eventbrite.Client {
	token, err := os.ReadFile(cfg.TokenFile)
	if err != nil {
		slog.Error(
			"missing API key file, need a developer API key from eventbrite",
			"path", cfg.TokenFile,
			"see", "https://www.eventbrite.com/platform/api#/introduction/authentication",
		)
		os.Exit(1)
	}

	var output restyutil.InstrumentOutput
	if *debugHttpDir != "" {
		output = restyutil.NewFilesystemOutput(*debugHttpDir)
	}

	client, err := eventbrite.NewClient(eventbrite.ClientOptions{
		Token:            strings.TrimSpace(string(token)),
		InstrumentOutput: output,
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize eventbrite client", err)
	}
	return client
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--debug-http <dir>]",
	Short: "Scrapes eventbrite for car events according to a config and writes the result files.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		telemetry.InstrumentPerfStats(ctx)

		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil && !os.IsNotExist(err) {
			serviceutil.Fatal("failed to read config", err)
		}
		cfg.applyDefaults()

		client := createClient(cfg)

		t1 := time.Now()
		result, err := carevents.Run(ctx, carevents.Options{
			Source:              client,
			SearchUrls:          cfg.SearchUrls,
			StartPage:           cfg.StartPage,
			MaxPages:            cfg.MaxPages,
			WhiteScoreThreshold: cfg.WhiteScoreThreshold,
			IncludeGrey:         cfg.IncludeGrey,
			CrawlDelay:          time.Duration(cfg.CrawlDelaySeconds) * time.Second,
		})
		if err != nil {
			slog.Warn("some pages failed during the batch", "err", err)
		}
		slog.Info("scraping time", "seconds", time.Since(t1).Seconds())

		if cfg.SaveRawDump {
			err = carevents.WriteRawDump(cfg.Output.RawDump, result.RawRecords)
			if err != nil {
				serviceutil.Fatal("failed to save raw dump", err)
			}
		}
		err = carevents.WriteEvents(cfg.Output.Events, result.Events)
		if err != nil {
			serviceutil.Fatal("failed to save events", err)
		}
		err = carevents.WriteEvents(cfg.Output.GreyEvents, result.GreyEvents)
		if err != nil {
			serviceutil.Fatal("failed to save grey events", err)
		}
		err = carevents.WriteEventNames(cfg.Output.EventNames, result.Events)
		if err != nil {
			serviceutil.Fatal("failed to save event names", err)
		}

		stats := result.Stats
		summary := table.NewWriter()
		summary.SetOutputMirror(os.Stdout)
		summary.AppendHeader(table.Row{"stat", "count"})
		summary.AppendRows([]table.Row{
			{"pages scanned", stats.PagesScanned},
			{"events discovered", stats.Discovered},
			{"promoted from grey", stats.Promoted},
			{"unusable records skipped", stats.Skipped},
			{"car events saved", stats.White},
			{"grey events saved", stats.Grey},
		})
		summary.SetStyle(table.StyleRounded)
		summary.Render()
	},
}
