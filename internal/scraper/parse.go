package scraper

import (
	"crypto/sha1"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"assessment-recommender/internal/domain/assessment"
)

// keyTypes maps the single-letter test-type keys printed in the vendor
// catalog onto the four catalog types. A = ability & aptitude,
// K = knowledge & skills, S = simulations, P = personality & behavior,
// B = biodata & situational judgement, C = competencies,
// D = development & 360, E = assessment exercises.
var keyTypes = map[string]assessment.Type{
	"A": assessment.TypeCognitive,
	"K": assessment.TypeTechnical,
	"S": assessment.TypeTechnical,
	"P": assessment.TypeBehavioral,
	"B": assessment.TypeBehavioral,
	"C": assessment.TypeProfessional,
	"D": assessment.TypeProfessional,
	"E": assessment.TypeProfessional,
}

// typeFromKeys resolves the catalog type from the row's key letters.
// The first recognized key wins; rows carry their primary key first.
func typeFromKeys(keys []string) (assessment.Type, bool) {
	for _, k := range keys {
		k = strings.ToUpper(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if t, ok := keyTypes[k]; ok {
			return t, true
		}
	}
	return "", false
}

// parseDurationText extracts the first integer from strings like
// "Approximate Completion Time in minutes = 17" or "25 minutes".
// Text without digits maps to 0.
func parseDurationText(s string) int {
	start := -1
	for i, r := range s {
		if unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, _ := strconv.Atoi(s[start:i])
			return n
		}
	}
	if start >= 0 {
		n, _ := strconv.Atoi(s[start:])
		return n
	}
	return 0
}

// assessmentIDFromLink derives a stable catalog id from a detail URL.
// The last path segment is the vendor's slug and survives re-scrapes;
// links without a usable slug fall back to a digest of the whole URL.
func assessmentIDFromLink(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	if u, err := url.Parse(link); err == nil {
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		for i := len(parts) - 1; i >= 0; i-- {
			seg := strings.TrimSpace(parts[i])
			if seg != "" && seg != "view" {
				return seg
			}
		}
	}
	h := sha1.Sum([]byte(link))
	return "urlsha1-" + hex.EncodeToString(h[:6])
}

func pickNonEmpty(a, b string) string {
	a = strings.TrimSpace(a)
	if a != "" {
		return a
	}
	return strings.TrimSpace(b)
}
