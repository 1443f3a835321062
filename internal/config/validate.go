package config

import (
	"errors"
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus everything wrong or
// suspicious about it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.ToLower(strings.TrimSpace(x))
			if x == "" || seen[x] {
				continue
			}
			seen[x] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Sources.LinkedIn.Regions = trimList(out.Sources.LinkedIn.Regions)
	out.Sources.Indeed.Regions = trimList(out.Sources.Indeed.Regions)
	out.Sources.Naukri.Regions = trimList(out.Sources.Naukri.Regions)
	out.Sources.TimesJobs.Regions = trimList(out.Sources.TimesJobs.Regions)
	out.Sources.Shine.Regions = trimList(out.Sources.Shine.Regions)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	anyEnabled := out.Sources.LinkedIn.Enabled || out.Sources.Indeed.Enabled ||
		out.Sources.Naukri.Enabled || out.Sources.TimesJobs.Enabled || out.Sources.Shine.Enabled
	if !anyEnabled {
		res.addWarn("no sources enabled; every search will be served from the Direct fallback only")
	}

	if out.Sources.TimeoutSeconds <= 0 {
		res.addErr("sources.timeout_seconds must be > 0")
	}
	if out.Sources.RequestsPerSecond <= 0 {
		res.addErr("sources.requests_per_second must be > 0")
	}
	if out.Sources.Burst <= 0 {
		res.addErr("sources.burst must be > 0")
	}

	checkSource := func(name string, sc SourceConfig) {
		if !sc.Enabled {
			return
		}
		if sc.MaxPostings <= 0 {
			res.addErr("sources.%s.max_postings must be > 0 when enabled", name)
		} else if sc.MaxPostings > 50 {
			res.addWarn("sources.%s.max_postings is high (%d); downstream merge cost grows with it", name, sc.MaxPostings)
		}
	}
	checkSource("linkedin", out.Sources.LinkedIn)
	checkSource("indeed", out.Sources.Indeed)
	checkSource("naukri", out.Sources.Naukri)
	checkSource("timesjobs", out.Sources.TimesJobs)
	checkSource("shine", out.Sources.Shine)

	if out.Cache.TTLMinutes <= 0 {
		res.addErr("cache.ttl_minutes must be > 0")
	}
	if out.Cache.CleanupMinutes < 0 {
		res.addErr("cache.cleanup_minutes must be >= 0")
	}

	if out.Search.MinResults < 0 {
		res.addErr("search.min_results must be >= 0")
	}
	if out.Search.DirectLimit <= 0 {
		res.addErr("search.direct_limit must be > 0")
	}

	if out.Scoring.MinMatchScore < 0 || out.Scoring.MinMatchScore > 100 {
		res.addErr("scoring.min_match_score must be 0..100")
	}
	if out.Scoring.TopSkills <= 0 {
		res.addErr("scoring.top_skills must be > 0")
	}
	if out.Scoring.MaxRecommended <= 0 {
		res.addErr("scoring.max_recommended must be > 0")
	}

	return out, res
}

func Validate(cfg Config) error {
	_, res := NormalizeAndValidate(cfg)
	if !res.OK() {
		return errors.New("config validation failed:\n- " + strings.Join(res.Errors, "\n- "))
	}
	return nil
}
