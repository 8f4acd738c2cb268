package scoring

import (
	"fmt"
	"math"
	"strings"
)

// Summary renders the one-line dominant profile description shown above the
// score chart. It returns "" when nothing was answered yes.
func Summary(r Result) string {
	dom := r.DominantScores()
	switch len(dom) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("Your child's profile is predominantly %s.", dom[0].Title)
	}

	sum := 0
	for _, cs := range dom {
		sum += cs.Score
	}
	parts := make([]string, 0, len(dom))
	for _, cs := range dom {
		pct := int(math.Round(float64(cs.Score) / float64(sum) * 100))
		parts = append(parts, fmt.Sprintf("%d%% %s", pct, shortTitle(cs.Title)))
	}
	return "Your child's profile shows strong characteristics of: " + strings.Join(parts, " & ") + "."
}

// shortTitle keeps the "Type N" prefix of a "Type N: Name" title.
func shortTitle(title string) string {
	if i := strings.Index(title, ":"); i > 0 {
		return strings.TrimSpace(title[:i])
	}
	return title
}
