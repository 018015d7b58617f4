package grader

// Answer-field labels shared by the prompt template and the result parser.
// The parser recognizes sections by these exact literals, so they live in
// one place: changing a label here changes both sides atomically.
const (
	// LabelScore marks the numeric score line.
	LabelScore = "คะแนนที่ได้"
	// LabelRationale marks the grading-rationale section.
	LabelRationale = "เหตุผลในการให้คะแนน"
	// LabelFeedback marks the student-feedback section.
	LabelFeedback = "ข้อเสนอแนะ"
)
