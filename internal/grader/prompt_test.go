package grader

import (
	"strings"
	"testing"
)

func TestBuildGradingPrompt_Deterministic(t *testing.T) {
	a := BuildGradingPrompt("เฉลย", "คำตอบ", 10)
	b := BuildGradingPrompt("เฉลย", "คำตอบ", 10)

	if a != b {
		t.Error("prompt must be deterministic for identical inputs")
	}
}

func TestBuildGradingPrompt_ContainsAllParts(t *testing.T) {
	prompt := BuildGradingPrompt("น้ำเดือดที่ 100 องศา", "น้ำเดือดที่หนึ่งร้อยองศา", 7.5)

	for _, want := range []string{
		"น้ำเดือดที่ 100 องศา",
		"น้ำเดือดที่หนึ่งร้อยองศา",
		"# คะแนนเต็ม: 7.5",
		"ความถูกต้องของแนวคิดหลัก (60%)",
		"ความสมบูรณ์ของคำตอบ (30%)",
		"การใช้ศัพท์เทคนิคที่ถูกต้อง (10%)",
		LabelScore,
		LabelRationale,
		LabelFeedback,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildGradingPrompt_WholeScoreWithoutDecimal(t *testing.T) {
	prompt := BuildGradingPrompt("s", "t", 10)

	if !strings.Contains(prompt, "# คะแนนเต็ม: 10\n") {
		t.Errorf("expected whole max score rendered without decimals")
	}
}

func TestPromptAndParserShareLabels(t *testing.T) {
	// A reply echoing the template's answer-field lines must be parseable:
	// the fragile textual contract holds because both sides use the same
	// constants.
	prompt := BuildGradingPrompt("s", "t", 10)

	var answerLines []string
	for _, line := range strings.Split(prompt, "\n") {
		if strings.Contains(line, LabelScore) ||
			strings.Contains(line, LabelRationale) ||
			strings.Contains(line, LabelFeedback) {
			answerLines = append(answerLines, line)
		}
	}
	if len(answerLines) != 3 {
		t.Fatalf("expected 3 answer-field lines in template, got %d", len(answerLines))
	}

	reply := answerLines[0] + " 5\n" + answerLines[1] + "\nเหตุผล\n" + answerLines[2] + "\nคำแนะนำ"
	results := ExtractResults(reply)

	if results.Score != 5 {
		t.Errorf("expected score 5, got %v", results.Score)
	}
	if results.Rationale != "เหตุผล" {
		t.Errorf("expected rationale %q, got %q", "เหตุผล", results.Rationale)
	}
	if results.Feedback != "คำแนะนำ" {
		t.Errorf("expected feedback %q, got %q", "คำแนะนำ", results.Feedback)
	}
}
