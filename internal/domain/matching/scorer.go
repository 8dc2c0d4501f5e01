package matching

import (
	"math"
	"strings"
)

// Score computes a 0-100 compatibility score between a candidate's skills
// and a job's skill and keyword lists. Skills carry 70 points, keywords 30,
// each list contributing proportionally to how many of its entries a user
// skill matches. The result is deterministic and independent of the order
// of all three inputs.
func Score(userSkills, jobSkills, jobKeywords []string) int {
	users := lowerAll(userSkills)
	skills := lowerAll(jobSkills)
	keywords := lowerAll(jobKeywords)

	skillMatches := 0
	for _, js := range skills {
		if matchesAny(users, js) {
			skillMatches++
		}
	}

	keywordMatches := 0
	for _, kw := range keywords {
		if matchesAny(users, kw) {
			keywordMatches++
		}
	}

	var skillScore, keywordScore float64
	if len(skills) > 0 {
		skillScore = float64(skillMatches) / float64(len(skills)) * 70
	}
	if len(keywords) > 0 {
		keywordScore = float64(keywordMatches) / float64(len(keywords)) * 30
	}

	score := int(math.Round(skillScore + keywordScore))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// SplitSkills turns a comma-separated skills field into a normalized skill
// set: trimmed, lowercased, deduplicated, first-seen order.
func SplitSkills(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		s := strings.ToLower(strings.TrimSpace(p))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// matchesAny reports whether target matches at least one user skill under
// bidirectional substring containment. Known precision limitation: very
// short skills over-match ("go" matches "google" and "django"). This is the
// documented matching rule, kept as-is.
func matchesAny(userSkills []string, target string) bool {
	for _, us := range userSkills {
		if strings.Contains(us, target) || strings.Contains(target, us) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(s))
	}
	return out
}
