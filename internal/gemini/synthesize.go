package gemini

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/expgenwoo218/aibuup24/internal/interview"
	"github.com/expgenwoo218/aibuup24/pkg/model"
)

const synthesisSystemMsg = `당신은 아래 프로필을 가진 실제 부업 경험자입니다. 주어진 질문에 그 사람의 말투로, 순서대로, 질문당 정확히 한 줄로만 답하세요.

규칙:
- 한 질문의 답을 여러 줄로 나누지 마세요.
- 번호, 접두사, 마크다운 없이 답 문장만 출력하세요.
- 질문을 건너뛰거나 새로 만들지 마세요.`

// SynthesizeAnswers runs exactly one completion for the whole question set
// and splits the result into one answer per non-empty line. The model gives
// no hard guarantee of a 1:1 line-to-question mapping; a short list is
// returned as-is and downstream rendering pads with the placeholder. A failed
// or empty completion is a synthesis failure, distinct from submission
// failures.
func (c *Client) SynthesizeAnswers(ctx context.Context, persona model.Persona, questions []string) ([]string, error) {
	var b strings.Builder
	b.WriteString("경험자 프로필:\n")
	for _, line := range persona.PromptLines() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n질문 목록:\n")
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}

	raw, err := c.Generate(ctx, b.String(), synthesisSystemMsg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interview.ErrSynthesisFailed, err)
	}

	answers := SplitAnswers(raw)
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: completion had no usable lines", interview.ErrSynthesisFailed)
	}
	return answers, nil
}

var listPrefix = regexp.MustCompile(`^(\d+[.)]\s*|[-*]\s+)`)

// SplitAnswers turns a completion block into per-question answers: one answer
// per non-empty line, list numbering stripped. Line i is taken as the answer
// to question i; entries past the real answer count may be misaligned, which
// callers must tolerate.
func SplitAnswers(block string) []string {
	var out []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, listPrefix.ReplaceAllString(line, ""))
	}
	return out
}
