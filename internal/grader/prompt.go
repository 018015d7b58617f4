package grader

import (
	"fmt"
	"strconv"
)

// systemInstruction frames the whole conversation for the model.
const systemInstruction = "คุณเป็นผู้ช่วยตรวจข้อสอบอัตนัย เปรียบเทียบคำตอบของนักเรียนกับเฉลยและให้คะแนน"

// BuildGradingPrompt renders the grading instruction for one submission.
// It is a pure function: same inputs, same prompt.
//
// The rubric weights and the three answer-field labels are fixed; the parser
// depends on the labels appearing verbatim in the model's reply.
func BuildGradingPrompt(solutionText, submissionText string, maxScore float64) string {
	return fmt.Sprintf(`# เฉลยของอาจารย์:
%s

# คำตอบของนักเรียน:
%s

# คะแนนเต็ม: %s

โปรดวิเคราะห์คำตอบของนักเรียนเทียบกับเฉลย แล้วให้คะแนนตามเกณฑ์ต่อไปนี้:
1. ความถูกต้องของแนวคิดหลัก (60%%)
2. ความสมบูรณ์ของคำตอบ (30%%)
3. การใช้ศัพท์เทคนิคที่ถูกต้อง (10%%)

ผลลัพธ์ที่ต้องการ:
1. %s (เป็นตัวเลข):
2. %s:
3. %sสำหรับนักเรียน:`,
		solutionText,
		submissionText,
		formatScore(maxScore),
		LabelScore,
		LabelRationale,
		LabelFeedback,
	)
}

// formatScore prints whole scores without a decimal point ("10", "7.5").
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
