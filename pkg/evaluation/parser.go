package evaluation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	scoreRe     = regexp.MustCompile(`(?i)\*\*SCORE\*\*:\s*\[?(\d+(?:\.\d+)?)`)
	strengthsRe = regexp.MustCompile(`(?is)\*\*STRENGTHS\*\*:(.*?)(?:\*\*|$)`)
	gapsRe      = regexp.MustCompile(`(?is)\*\*(GAPS|CRITICAL GAPS|MINOR GAPS)\*\*:(.*?)(?:\*\*|$)`)
	recsRe      = regexp.MustCompile(`(?is)\*\*RECOMMENDATIONS\*\*:(.*?)(?:\*\*|$)`)
	detailRe    = regexp.MustCompile(`(?is)\*\*DETAILED ANALYSIS\*\*:(.*)$`)
)

// ParseAnalysis extracts the structured fields from a model analysis
// response. Model output is untrusted, so any failure falls back to a
// minimal section carrying the raw response.
func ParseAnalysis(response string, sectionType SectionType) (section Section) {
	defer func() {
		if r := recover(); r != nil {
			section = Section{
				SectionType:     sectionType,
				Title:           fmt.Sprintf("%s Analysis", sectionType),
				Content:         response,
				Gaps:            []string{},
				Strengths:       []string{},
				Recommendations: []string{},
			}
		}
	}()

	var score *float64
	if m := scoreRe.FindStringSubmatch(response); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			score = &v
		}
	}

	strengths := []string{}
	if m := strengthsRe.FindStringSubmatch(response); m != nil {
		strengths = bulletLines(m[1])
	}

	gaps := []string{}
	if m := gapsRe.FindStringSubmatch(response); m != nil {
		gaps = bulletLines(m[2])
	}

	recommendations := []string{}
	if m := recsRe.FindStringSubmatch(response); m != nil {
		recommendations = bulletLines(m[1])
	}

	content := response
	if m := detailRe.FindStringSubmatch(response); m != nil {
		content = strings.TrimSpace(m[1])
	}

	return Section{
		SectionType:     sectionType,
		Title:           sectionType.Title(),
		Content:         content,
		Score:           score,
		Gaps:            gaps,
		Strengths:       strengths,
		Recommendations: recommendations,
	}
}

// bulletLines keeps only dash-prefixed lines. Asterisk or numbered bullets
// are intentionally ignored, matching the output format the prompts request.
func bulletLines(block string) []string {
	items := []string{}
	for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "-") {
			continue
		}
		item := strings.TrimSpace(strings.Trim(trimmed, "- "))
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
