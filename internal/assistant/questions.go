package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/lifearchitect/internal/ai"
	"github.com/2beens/lifearchitect/internal/telemetry/tracing"
)

const questionsPrompt = `You are a CFA L1 exam question generator.
Generate 3-5 multiple-choice questions for the CFA Level 1 curriculum based on the following topic structure:
Main Topic: %q
%s
For each question:
1. Provide the question text.
2. Provide 3 multiple-choice options, labeled A, B, C.
3. Indicate the correct answer (e.g., "Correct Answer: B").
4. Provide a brief explanation for the correct answer.

Format the output clearly for easy readability. Ensure questions are typical of CFA L1 difficulty.
Example of one question structure:
---
Question 1: [Question Text]
A) [Option A]
B) [Option B]
C) [Option C]
Correct Answer: [Letter]
Explanation: [Brief explanation]
---
`

type QuestionGenerator struct {
	lastError
	generator ai.Generator
}

func NewQuestionGenerator(g ai.Generator) *QuestionGenerator {
	return &QuestionGenerator{generator: g}
}

// Generate returns free-text practice questions for the topic path.
func (q *QuestionGenerator) Generate(ctx context.Context, topic, subTopic, subSubTopic string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "assistant.questions.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", q.record(fmt.Errorf("%w: please provide a main topic", ErrInvalidInput))
	}

	var sub strings.Builder
	if s := strings.TrimSpace(subTopic); s != "" {
		fmt.Fprintf(&sub, "Sub-topic: %q\n", s)
	}
	if s := strings.TrimSpace(subSubTopic); s != "" {
		fmt.Fprintf(&sub, "Sub-sub-topic: %q\n", s)
	}

	text, err := q.generator.GenerateText(ctx, fmt.Sprintf(questionsPrompt, topic, sub.String()), false)
	if err != nil {
		return "", q.record(fmt.Errorf("failed to generate questions: %w", err))
	}

	_ = q.record(nil)
	return text, nil
}
