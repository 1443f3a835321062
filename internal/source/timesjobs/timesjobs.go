// Package timesjobs scrapes timesjobs.com search results.
package timesjobs

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
		cfg.MaxPostings = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Scraper{
		cfg:     cfg,
		hc:      util.NewClient(cfg.Timeout),
		limiter: limiter,
		log:     log.Named("timesjobs"),
	}
}

func (s *Scraper) Name() string { return domain.SourceTimesJobs }

func (s *Scraper) Fetch(ctx context.Context, query, location string) ([]domain.Posting, error) {
	searchURL := fmt.Sprintf(
		"https://www.timesjobs.com/candidate/job-search.html?searchType=personalizedSearch&from=submit&txtKeywords=%s&txtLocation=%s",
		url.QueryEscape(query), url.QueryEscape(location),
	)

	doc, err := util.FetchDocument(ctx, s.hc, s.limiter, searchURL)
	if err != nil {
		s.log.Warn("fetch failed, contributing nothing", zap.String("url", searchURL), zap.Error(err))
		return nil, nil
	}

	seen := map[domain.Key]bool{}
	var postings []domain.Posting

	doc.Find("li.clearfix.job-bx").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		titleElem := card.Find("h2").First()
		title := util.CleanText(titleElem.Text())
		company := util.CleanText(card.Find("h3.joblist-comp-name").First().Text())
		if title == "" || company == "" {
			return true
		}

		loc := util.NormalizeLocation(card.Find("ul.top-jd-dtl span").First().Text())
		if loc == "" {
			loc = location
		}

		link := "#"
		if href, ok := titleElem.Find("a").First().Attr("href"); ok && href != "" {
			link = href
		}

		p := domain.Posting{
			Title:    title,
			Company:  company,
			Location: loc,
			URL:      link,
			Source:   domain.SourceTimesJobs,
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
