// Package linkedin scrapes the public LinkedIn jobs search page. No login,
// no API key; the guest search markup is the contract and it changes
// without notice, so parsing is strictly best-effort.
package linkedin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/source/util"
)

type Config struct {
	MaxPostings int
	Timeout     time.Duration
}

type Scraper struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
	log     *zap.Logger
}

func New(cfg Config, limiter *util.HostLimiter, log *zap.Logger) *Scraper {
	if cfg.MaxPostings <= 0 {
		cfg.MaxPostings = 15
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Scraper{
		cfg:     cfg,
		hc:      util.NewClient(cfg.Timeout),
		limiter: limiter,
		log:     log.Named("linkedin"),
	}
}

func (s *Scraper) Name() string { return domain.SourceLinkedIn }

func (s *Scraper) Fetch(ctx context.Context, query, location string) ([]domain.Posting, error) {
	searchURL := fmt.Sprintf(
		"https://www.linkedin.com/jobs/search?keywords=%s&location=%s",
		url.QueryEscape(query), url.QueryEscape(location),
	)

	doc, err := util.FetchDocument(ctx, s.hc, s.limiter, searchURL)
	if err != nil {
		// one flaky source must never fail the whole aggregate
		s.log.Warn("fetch failed, contributing nothing", zap.String("url", searchURL), zap.Error(err))
		return nil, nil
	}

	seen := map[domain.Key]bool{}
	var postings []domain.Posting

	doc.Find("div.base-card").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		title := util.CleanText(card.Find("h3.base-search-card__title").First().Text())
		company := util.CleanText(card.Find("h4.base-search-card__subtitle").First().Text())
		if title == "" || company == "" {
			return true
		}

		loc := util.NormalizeLocation(card.Find("span.job-search-card__location").First().Text())
		if loc == "" {
			loc = location
		}

		link, _ := card.Find("a.base-card__full-link").First().Attr("href")
		if link == "" {
			link = "#"
		}

		p := domain.Posting{
			Title:    title,
			Company:  company,
			Location: loc,
			URL:      link,
			Source:   domain.SourceLinkedIn,
		}
		if seen[p.Key()] {
			return true
		}
		seen[p.Key()] = true
		postings = append(postings, p)

		return len(postings) < s.cfg.MaxPostings
	})

	s.log.Debug("scraped", zap.Int("postings", len(postings)))
	return postings, nil
}
