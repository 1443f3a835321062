// Package rank scores postings against a candidate's skill set and orders
// them. The score is an explicitly bounded heuristic, not a similarity
// metric: textual overlap drives it, skill breadth sets a floor, and a few
// fixed desirability bonuses nudge it. The constants are tunable; the
// invariants (bounds, determinism, zero-skills-zero, breadth floor) are
// not.
package rank

import (
	"hash/fnv"
	"math/rand"
	"sort"
	"strings"

	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/skills"
)

// SeedFunc derives the PRNG seed for one (posting, skill set) pair. It is
// injectable so tests can pin exact outputs.
type SeedFunc func(title, company string, skillCount int) int64

// DefaultSeed hashes the posting identity plus the skill count, giving the
// same jitter for the same inputs across runs and processes.
func DefaultSeed(title, company string, skillCount int) int64 {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(title)))
	h.Write([]byte{'|'})
	h.Write([]byte(strings.ToLower(company)))
	h.Write([]byte{'|'})
	h.Write([]byte{byte(skillCount), byte(skillCount >> 8)})
	return int64(h.Sum64())
}

type Scorer struct {
	Seed SeedFunc
}

func NewScorer() *Scorer {
	return &Scorer{Seed: DefaultSeed}
}

const (
	perMatchPoints = 12
	prestigeBonus  = 8
	seniorityBonus = 5
	hotSkillBonus  = 5
	jitterSpan     = 7 // jitter in [0, jitterSpan)
	maxScore       = 100
)

var prestigeEmployers = []string{
	"google", "microsoft", "amazon", "apple", "meta", "netflix",
	"linkedin", "adobe", "salesforce", "goldman sachs", "jpmorgan",
}

var seniorityTerms = []string{
	"senior", "lead", "principal", "staff", "architect", "head", "manager",
}

var hotSkills = []string{
	"python", "react", "aws", "kubernetes", "machine learning", "go", "rust",
}

// breadthFloor is the minimum score a posting gets purely from how many
// skills the candidate has: broad skill sets signal general capability
// even without a textual match.
func breadthFloor(skillCount int) int {
	switch {
	case skillCount >= 15:
		return 40
	case skillCount >= 10:
		return 30
	case skillCount >= 5:
		return 20
	case skillCount >= 1:
		return 10
	default:
		return 0
	}
}

// Score returns an integer in [0,100]. Zero skills always score 0.
func (s *Scorer) Score(set skills.Set, p domain.Posting) int {
	n := len(set)
	if n == 0 {
		return 0
	}

	text := strings.ToLower(p.Title + " " + p.Company)

	score := breadthFloor(n)

	for skill := range set {
		if skills.ContainsToken(text, skill) {
			score += perMatchPoints
		}
	}

	for _, name := range prestigeEmployers {
		if strings.Contains(strings.ToLower(p.Company), name) {
			score += prestigeBonus
			break
		}
	}
	lowTitle := strings.ToLower(p.Title)
	for _, term := range seniorityTerms {
		if skills.ContainsToken(lowTitle, term) {
			score += seniorityBonus
			break
		}
	}
	for _, skill := range hotSkills {
		if skills.ContainsToken(text, skill) {
			score += hotSkillBonus
			break
		}
	}

	rng := rand.New(rand.NewSource(s.Seed(p.Title, p.Company, n)))
	score += rng.Intn(jitterSpan)

	if score > maxScore {
		score = maxScore
	}
	return score
}

// Rank scores every posting and returns scored copies sorted by descending
// score, ties keeping their original relative order. Postings at or below
// minScore are dropped entirely.
func (s *Scorer) Rank(set skills.Set, postings []domain.Posting, minScore int) []domain.Posting {
	out := make([]domain.Posting, 0, len(postings))
	for _, p := range postings {
		score := s.Score(set, p)
		if score <= minScore {
			continue
		}
		out = append(out, p.WithScore(score))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].MatchScore > *out[j].MatchScore
	})
	return out
}
