// Package direct supplies synthetic "apply directly" postings built from a
// fixed employer taxonomy. The aggregator appends them when the real
// sources come back thin, so a search never returns a trivial result set.
package direct

import (
	"hash/fnv"
	"strings"

	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/source/util"
)

type employer struct {
	name      string
	url       string
	locations []string
}

type category struct {
	keywords  []string
	employers []employer
}

// Categories keyed by keywords matched against the query. Technology is
// also the fallback when nothing matches.
var taxonomy = []category{
	{
		keywords: []string{"software", "developer", "engineer", "programmer", "tech", "it", "data", "cloud", "devops"},
		employers: []employer{
			{"Google", "https://careers.google.com", []string{"Mountain View, CA", "Remote", "Multiple Locations"}},
			{"Microsoft", "https://careers.microsoft.com", []string{"Redmond, WA", "Remote", "Multiple Locations"}},
			{"Amazon", "https://www.amazon.jobs", []string{"Seattle, WA", "Remote", "Multiple Locations"}},
			{"Apple", "https://www.apple.com/careers", []string{"Cupertino, CA", "Remote", "Multiple Locations"}},
			{"Meta", "https://www.metacareers.com", []string{"Menlo Park, CA", "Remote", "Multiple Locations"}},
			{"Netflix", "https://jobs.netflix.com", []string{"Los Gatos, CA", "Remote", "Multiple Locations"}},
			{"LinkedIn", "https://careers.linkedin.com", []string{"Sunnyvale, CA", "Remote", "Multiple Locations"}},
			{"Adobe", "https://www.adobe.com/careers", []string{"San Jose, CA", "Remote", "Multiple Locations"}},
			{"Salesforce", "https://www.salesforce.com/company/careers", []string{"San Francisco, CA", "Remote", "Multiple Locations"}},
		},
	},
	{
		keywords: []string{"finance", "bank", "accounting", "financial", "investment", "trading", "analyst"},
		employers: []employer{
			{"JPMorgan Chase", "https://careers.jpmorgan.com", []string{"New York, NY", "Multiple Locations"}},
			{"Goldman Sachs", "https://www.goldmansachs.com/careers", []string{"New York, NY", "Multiple Locations"}},
			{"Morgan Stanley", "https://www.morganstanley.com/people-opportunities", []string{"New York, NY", "Multiple Locations"}},
			{"Bank of America", "https://careers.bankofamerica.com", []string{"Charlotte, NC", "Multiple Locations"}},
			{"Wells Fargo", "https://www.wellsfargo.com/about/careers", []string{"San Francisco, CA", "Multiple Locations"}},
			{"Citigroup", "https://jobs.citi.com", []string{"New York, NY", "Multiple Locations"}},
			{"BlackRock", "https://careers.blackrock.com", []string{"New York, NY", "Multiple Locations"}},
			{"Visa", "https://www.visa.com/careers", []string{"San Francisco, CA", "Multiple Locations"}},
		},
	},
	{
		keywords: []string{"health", "medical", "doctor", "nurse", "hospital", "clinical", "healthcare"},
		employers: []employer{
			{"Mayo Clinic", "https://jobs.mayoclinic.org", []string{"Rochester, MN", "Multiple Locations"}},
			{"Cleveland Clinic", "https://my.clevelandclinic.org/careers", []string{"Cleveland, OH", "Multiple Locations"}},
			{"Kaiser Permanente", "https://www.kaiserpermanentejobs.org", []string{"Oakland, CA", "Multiple Locations"}},
			{"UnitedHealth Group", "https://careers.unitedhealthgroup.com", []string{"Minnetonka, MN", "Multiple Locations"}},
			{"Johnson & Johnson", "https://www.careers.jnj.com", []string{"New Brunswick, NJ", "Multiple Locations"}},
			{"Pfizer", "https://careers.pfizer.com", []string{"New York, NY", "Multiple Locations"}},
			{"Moderna", "https://www.modernatx.com/careers", []string{"Cambridge, MA", "Multiple Locations"}},
		},
	},
}

// Postings builds up to limit synthetic postings for query. Fully
// deterministic: same query, same output, including the chosen locations.
func Postings(query string, limit int) []domain.Posting {
	if limit <= 0 {
		return nil
	}

	cat := match(query)
	title := util.TitleCase(query) + " Position"

	out := make([]domain.Posting, 0, limit)
	for _, e := range cat.employers {
		if len(out) == limit {
			break
		}
		out = append(out, domain.Posting{
			Title:    title,
			Company:  e.name,
			Location: e.locations[pick(query, e.name, len(e.locations))],
			URL:      e.url,
			Source:   domain.SourceDirect,
		})
	}
	return out
}

func match(query string) category {
	q := strings.ToLower(query)
	for _, cat := range taxonomy {
		for _, kw := range cat.keywords {
			if strings.Contains(q, kw) {
				return cat
			}
		}
	}
	return taxonomy[0]
}

// pick spreads locations across employers without global random state.
func pick(query, name string, n int) int {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(query)))
	h.Write([]byte{'|'})
	h.Write([]byte(name))
	return int(h.Sum32() % uint32(n))
}
