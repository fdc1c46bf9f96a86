package evaluation

import (
	"reflect"
	"testing"
)

const sampleAnalysis = `**SCORE**: 85

**STRENGTHS**:
- Clear objectives
- Strong methodology

**GAPS**:
- Missing budget details

**RECOMMENDATIONS**:
- Add detailed budget breakdown
- Clarify timeline

**DETAILED ANALYSIS**:
The proposal demonstrates solid internal alignment between goals and activities.`

func TestParseAnalysis(t *testing.T) {
	section := ParseAnalysis(sampleAnalysis, SectionInternal)

	if section.SectionType != SectionInternal {
		t.Errorf("section_type = %v", section.SectionType)
	}
	if section.Title != "Internal Consistency Analysis" {
		t.Errorf("title = %q", section.Title)
	}
	if section.Score == nil || *section.Score != 85 {
		t.Errorf("score = %v, want 85", section.Score)
	}
	if !reflect.DeepEqual(section.Strengths, []string{"Clear objectives", "Strong methodology"}) {
		t.Errorf("strengths = %v", section.Strengths)
	}
	if !reflect.DeepEqual(section.Gaps, []string{"Missing budget details"}) {
		t.Errorf("gaps = %v", section.Gaps)
	}
	if !reflect.DeepEqual(section.Recommendations, []string{"Add detailed budget breakdown", "Clarify timeline"}) {
		t.Errorf("recommendations = %v", section.Recommendations)
	}
	if section.Content != "The proposal demonstrates solid internal alignment between goals and activities." {
		t.Errorf("content = %q", section.Content)
	}
}

func TestParseAnalysisScoreVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"bracketed", "**SCORE**: [72]", 72},
		{"decimal", "**SCORE**: 66.5", 66.5},
		{"lowercase header", "**score**: 90", 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section := ParseAnalysis(tt.text, SectionExternal)
			if section.Score == nil || *section.Score != tt.want {
				t.Errorf("score = %v, want %v", section.Score, tt.want)
			}
		})
	}
}

func TestParseAnalysisDeltaGapHeaders(t *testing.T) {
	text := `**SCORE**: 70

**CRITICAL GAPS**:
- No monitoring plan

**MINOR GAPS**:
- Vague reporting cadence

**RECOMMENDATIONS**:
- Define monitoring indicators

**DETAILED ANALYSIS**:
Gap narrative.`

	section := ParseAnalysis(text, SectionDelta)
	if section.Title != "Gap Analysis" {
		t.Errorf("title = %q", section.Title)
	}
	// Only the first gap header is captured, matching the single-block format.
	if !reflect.DeepEqual(section.Gaps, []string{"No monitoring plan"}) {
		t.Errorf("gaps = %v", section.Gaps)
	}
}

func TestParseAnalysisEmptyResponse(t *testing.T) {
	section := ParseAnalysis("", SectionInternal)

	if section.Score != nil {
		t.Errorf("score = %v, want nil", section.Score)
	}
	if section.Content != "" {
		t.Errorf("content = %q, want empty", section.Content)
	}
	if len(section.Strengths) != 0 || len(section.Gaps) != 0 || len(section.Recommendations) != 0 {
		t.Error("lists should be empty for an empty response")
	}
	if section.Title != "Internal Consistency Analysis" {
		t.Errorf("title = %q, the section header is set regardless of input", section.Title)
	}
}

func TestParseAnalysisUnstructuredResponse(t *testing.T) {
	text := "The model ignored the format and wrote free prose instead."
	section := ParseAnalysis(text, SectionInternal)

	if section.Score != nil {
		t.Errorf("score should be nil, got %v", section.Score)
	}
	if section.Content != text {
		t.Errorf("content should fall back to the full response, got %q", section.Content)
	}
	if len(section.Gaps) != 0 || len(section.Strengths) != 0 || len(section.Recommendations) != 0 {
		t.Error("lists should be empty for unstructured output")
	}
}

func TestParseAnalysisIgnoresNonDashBullets(t *testing.T) {
	text := `**STRENGTHS**:
* starred bullet
1. numbered bullet
- dashed bullet

**DETAILED ANALYSIS**:
x`

	section := ParseAnalysis(text, SectionInternal)
	if !reflect.DeepEqual(section.Strengths, []string{"dashed bullet"}) {
		t.Errorf("strengths = %v, want only the dashed bullet", section.Strengths)
	}
}
