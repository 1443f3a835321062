// Package shine scrapes shine.com. Shine's CSS-module class names carry a
// build hash suffix, so lookups use attribute-prefix selectors.
package shine

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
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
		cfg.MaxPostings = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Scraper{
		cfg:     cfg,
		hc:      util.NewClient(cfg.Timeout),
		limiter: limiter,
		log:     log.Named("shine"),
	}
}

func (s *Scraper) Name() string { return domain.SourceShine }

func (s *Scraper) Fetch(ctx context.Context, query, location string) ([]domain.Posting, error) {
	searchURL := fmt.Sprintf(
		"https://www.shine.com/job-search/%s-jobs-in-%s",
		url.PathEscape(query), url.PathEscape(location),
	)

	doc, err := util.FetchDocument(ctx, s.hc, s.limiter, searchURL)
	if err != nil {
		s.log.Warn("fetch failed, contributing nothing", zap.String("url", searchURL), zap.Error(err))
		return nil, nil
	}

	seen := map[domain.Key]bool{}
	var postings []domain.Posting

	doc.Find(`div[class^="jobCard_jobCard__body"]`).EachWithBreak(func(_ int, card *goquery.Selection) bool {
		title := util.CleanText(card.Find("h2").First().Text())
		if title == "" {
			return true
		}

		// Shine sometimes hides the employer behind a login wall.
		company := util.CleanText(card.Find(`div[class^="jobCard_jobCard__companyName"]`).First().Text())
		if company == "" {
			company = domain.CompanyNotListed
		}

		loc := util.NormalizeLocation(card.Find(`div[class^="jobCard_jobCard__location"]`).First().Text())
		if loc == "" {
			loc = location
		}

		link := "#"
		if href, ok := card.Find(`a[class^="jobCard_jobCard__link"]`).First().Attr("href"); ok && href != "" {
			if !strings.HasPrefix(href, "http") {
				href = "https://www.shine.com" + href
			}
			link = href
		}

		p := domain.Posting{
			Title:    title,
			Company:  company,
			Location: loc,
			URL:      link,
			Source:   domain.SourceShine,
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
