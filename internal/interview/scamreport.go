package interview

import (
	"fmt"
	"strings"
)

// ScamReportQuestions is the fixed script of the 강팔이 피해 사례 wizard. It is
// deliberately not catalog-driven: the report template below addresses the
// answers by position.
var ScamReportQuestions = []string{
	"실행한 부업명이 무엇인가요?",
	"강의 비용은 얼마였나요?",
	"강의에서 무엇을 배웠나요? 생각나시는대로 서술해 주세요.",
	"강팔이가 제시한 장밋빛 미래를 문장으로 표현하면?",
	"모험가님이 실행한 결과는 어떠했나요?",
	"강팔이가 속았다고 생각하시나요?",
	"왜 그렇게 생각하시나요? 길게 써도 됩니다.",
	"이런 강팔이를 만났을 때, 주의할 사항을 한 수 가르쳐 주세요.",
	"자유롭게 하시고 싶은 말씀 부탁드려요.",
}

// ScamReportResult is the result stamp on every published scam report.
const ScamReportResult = "검증 완료: 사기 주의보"

// RenderScamReport assembles the structured 피해 고발 report. Like
// RenderReport it tolerates a short answer slice, substituting the
// placeholder.
func RenderScamReport(answers []string) string {
	ans := func(i int) string {
		if i < len(answers) && strings.TrimSpace(answers[i]) != "" {
			return answers[i]
		}
		return AnswerPlaceholder
	}

	var b strings.Builder
	b.WriteString("### ⚠️ [강팔이 피해 고발] 정밀 분석 리포트\n\n")
	b.WriteString("**1. 피해 개요**\n")
	fmt.Fprintf(&b, "* **실행 부업:** %s\n", ans(0))
	fmt.Fprintf(&b, "* **강의 비용:** %s\n\n", ans(1))
	b.WriteString("**2. 기망 기법 및 수법 분석**\n")
	fmt.Fprintf(&b, "* **강팔이의 주장:** \"%s\"\n", ans(3))
	fmt.Fprintf(&b, "* **주요 교육 내용:** %s\n\n", ans(2))
	b.WriteString("**3. 실제 피해 사실**\n")
	fmt.Fprintf(&b, "* **실행 결과:** %s\n", ans(4))
	fmt.Fprintf(&b, "* **피해자 판단 사유:** %s (%s)\n\n", ans(5), ans(6))
	b.WriteString("**4. 모험가 가이드 및 주의사항**\n")
	fmt.Fprintf(&b, "* **주의할 점:** %s\n", ans(7))
	fmt.Fprintf(&b, "* **추가 의견:** %s\n\n", ans(8))
	b.WriteString("---\n")
	b.WriteString("*본 리포트는 제보자의 실제 답변을 기반으로 구조화된 공익 제보 리포트입니다.*")
	return b.String()
}

// ScamReportTitle derives the post title from the first answer.
func ScamReportTitle(answers []string) string {
	subject := AnswerPlaceholder
	if len(answers) > 0 && strings.TrimSpace(answers[0]) != "" {
		subject = answers[0]
	}
	return fmt.Sprintf("[피해사례] %s 관련 제보 리포트", subject)
}
