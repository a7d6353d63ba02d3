package interview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderScamReport(t *testing.T) {
	answers := []string{
		"쿠팡 파트너스", "30만원", "블로그 개설법",
		"월 천만원 보장", "수익 0원", "네",
		"환불도 안 해줌", "후기부터 검색하세요", "다들 조심하세요",
	}
	got := RenderScamReport(answers)

	require.True(t, strings.HasPrefix(got, "### ⚠️ [강팔이 피해 고발] 정밀 분석 리포트\n\n"))
	assert.Contains(t, got, "* **실행 부업:** 쿠팡 파트너스\n")
	assert.Contains(t, got, "* **강의 비용:** 30만원\n")
	assert.Contains(t, got, "* **강팔이의 주장:** \"월 천만원 보장\"\n")
	assert.Contains(t, got, "* **주요 교육 내용:** 블로그 개설법\n")
	assert.Contains(t, got, "* **실행 결과:** 수익 0원\n")
	assert.Contains(t, got, "* **피해자 판단 사유:** 네 (환불도 안 해줌)\n")
	assert.Contains(t, got, "* **주의할 점:** 후기부터 검색하세요\n")
	assert.Contains(t, got, "* **추가 의견:** 다들 조심하세요\n")
	assert.True(t, strings.HasSuffix(got, "*본 리포트는 제보자의 실제 답변을 기반으로 구조화된 공익 제보 리포트입니다.*"))
}

func TestRenderScamReportShortAnswers(t *testing.T) {
	got := RenderScamReport([]string{"쿠팡 파트너스"})

	assert.Contains(t, got, "* **실행 부업:** 쿠팡 파트너스\n")
	assert.Contains(t, got, "* **강의 비용:** "+AnswerPlaceholder+"\n")
	assert.Contains(t, got, "* **추가 의견:** "+AnswerPlaceholder+"\n")
}

func TestScamReportTitle(t *testing.T) {
	assert.Equal(t, "[피해사례] 쿠팡 파트너스 관련 제보 리포트", ScamReportTitle([]string{"쿠팡 파트너스"}))
	assert.Equal(t, "[피해사례] 답변 없음 관련 제보 리포트", ScamReportTitle(nil))
}

func TestScamReportQuestionCount(t *testing.T) {
	// RenderScamReport addresses answers 0..8 by position
	assert.Len(t, ScamReportQuestions, 9)
}
