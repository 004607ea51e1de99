package grader

import (
	"bytes"
	"fmt"
	"text/template"
)

// Grading instruction sent to every candidate model. The backend must answer
// with a single JSON object carrying "score" and "reason".
const evaluationPrompt = `You are an examiner for 12th grade answer sheets.
The student has written an answer for a 5-mark question.
Your task is to carefully evaluate the answer text and return ONLY the marks (0 to 5) with brief reasoning.

Rules:
- Be fair and follow a 12th grade standard marking scheme.
- Check grammar, content accuracy, relevance, and completeness.
- Use the provided reference guide to verify correctness of concepts and facts.
- Award marks based on how well the answer aligns with the reference material.
- Do not rewrite or improve the answer.
- Keep the evaluation short and clear.

Reference Guide Content:
{{.GuideContent}}

Format your output strictly as JSON:
{
  "score": <marks out of 5>,
  "reason": "<one short reason why you gave this score>"
}

Student's answer:
"""{{.AnswerText}}"""
`

var evaluationTemplate = template.Must(template.New("evaluation").Parse(evaluationPrompt))

type promptData struct {
	GuideContent string
	AnswerText   string
}

func buildPrompt(guideContent, answerText string) (string, error) {
	var buf bytes.Buffer
	if err := evaluationTemplate.Execute(&buf, promptData{
		GuideContent: guideContent,
		AnswerText:   answerText,
	}); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}
