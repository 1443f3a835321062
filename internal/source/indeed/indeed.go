// Package indeed scrapes Indeed's search results. Indeed serves several
// generations of card markup depending on experiment bucket, so the card
// and field lookups each try a list of selectors in order.
package indeed

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
		cfg.MaxPostings = 15
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	return &Scraper{
		cfg:     cfg,
		hc:      util.NewClient(cfg.Timeout),
		limiter: limiter,
		log:     log.Named("indeed"),
	}
}

func (s *Scraper) Name() string { return domain.SourceIndeed }

var cardSelectors = []string{
	"div.job_seen_beacon",
	"td.resultContent",
	"div.jobsearch-SerpJobCard",
}

var titleSelectors = []string{"h2.jobTitle", "a.jcs-JobTitle", "span.jobTitle", "h2.title"}
var companySelectors = []string{"span.companyName", "div.company_location", "span.company"}
var locationSelectors = []string{"div.companyLocation", "span.location"}

func (s *Scraper) Fetch(ctx context.Context, query, location string) ([]domain.Posting, error) {
	searchURL := fmt.Sprintf(
		"https://www.indeed.com/jobs?q=%s&l=%s&sort=date",
		url.QueryEscape(query), url.QueryEscape(location),
	)

	doc, err := util.FetchDocument(ctx, s.hc, s.limiter, searchURL)
	if err != nil {
		s.log.Warn("fetch failed, contributing nothing", zap.String("url", searchURL), zap.Error(err))
		return nil, nil
	}

	var cards *goquery.Selection
	for _, sel := range cardSelectors {
		cards = doc.Find(sel)
		if cards.Length() > 0 {
			break
		}
	}
	if cards == nil || cards.Length() == 0 {
		s.log.Warn("no job cards matched any known selector", zap.String("url", searchURL))
		return nil, nil
	}

	seen := map[domain.Key]bool{}
	var postings []domain.Posting

	cards.EachWithBreak(func(_ int, card *goquery.Selection) bool {
		title := firstText(card, titleSelectors)
		company := firstText(card, companySelectors)
		if title == "" || company == "" {
			return true
		}

		loc := util.NormalizeLocation(firstText(card, locationSelectors))
		if loc == "" {
			loc = location
		}

		link := "#"
		if href, ok := card.Find("a[href]").First().Attr("href"); ok && href != "" {
			if !strings.HasPrefix(href, "http") {
				href = "https://www.indeed.com" + href
			}
			link = href
		}

		p := domain.Posting{
			Title:    title,
			Company:  company,
			Location: loc,
			URL:      link,
			Source:   domain.SourceIndeed,
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

func firstText(card *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		if t := util.CleanText(card.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}
