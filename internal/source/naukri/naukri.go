// Package naukri scrapes naukri.com, an Indian job board. Only applicable
// for Indian locations; the aggregator handles that gating via config.
package naukri

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
		cfg.Timeout = 15 * time.Second
	}
	return &Scraper{
		cfg:     cfg,
		hc:      util.NewClient(cfg.Timeout),
		limiter: limiter,
		log:     log.Named("naukri"),
	}
}

func (s *Scraper) Name() string { return domain.SourceNaukri }

func (s *Scraper) Fetch(ctx context.Context, query, location string) ([]domain.Posting, error) {
	searchURL := fmt.Sprintf(
		"https://www.naukri.com/%s-jobs-in-%s",
		url.PathEscape(query), url.PathEscape(location),
	)

	doc, err := util.FetchDocument(ctx, s.hc, s.limiter, searchURL)
	if err != nil {
		s.log.Warn("fetch failed, contributing nothing", zap.String("url", searchURL), zap.Error(err))
		return nil, nil
	}

	seen := map[domain.Key]bool{}
	var postings []domain.Posting

	doc.Find("article.jobTuple").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		titleLink := card.Find("a.title").First()
		title := util.CleanText(titleLink.Text())
		company := util.CleanText(card.Find("a.subTitle").First().Text())
		if title == "" || company == "" {
			return true
		}

		loc := util.NormalizeLocation(card.Find("li.location").First().Text())
		if loc == "" {
			loc = location
		}

		link := "#"
		if href, ok := titleLink.Attr("href"); ok && href != "" {
			if !strings.HasPrefix(href, "http") {
				href = "https://www.naukri.com" + href
			}
			link = href
		}

		p := domain.Posting{
			Title:    title,
			Company:  company,
			Location: loc,
			URL:      link,
			Source:   domain.SourceNaukri,
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
