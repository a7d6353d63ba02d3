package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAnswers(t *testing.T) {
	block := "1. 스마트스토어 운영 중입니다\n2) 월 50만원 정도요\n- 틈틈이 하고 있어요\n"
	assert.Equal(t, []string{
		"스마트스토어 운영 중입니다",
		"월 50만원 정도요",
		"틈틈이 하고 있어요",
	}, SplitAnswers(block))
}

func TestSplitAnswersSkipsBlankLines(t *testing.T) {
	block := "\n첫 번째 답\n\n   \n두 번째 답\n\n"
	assert.Equal(t, []string{"첫 번째 답", "두 번째 답"}, SplitAnswers(block))
}

func TestSplitAnswersNoPrefix(t *testing.T) {
	assert.Equal(t, []string{"그냥 문장"}, SplitAnswers("그냥 문장"))
}

// The model may collapse several answers into one line; the split returns
// whatever it got and downstream padding covers the gap.
func TestSplitAnswersShortCompletion(t *testing.T) {
	got := SplitAnswers("질문 세 개에 대한 한 줄 답")
	assert.Len(t, got, 1)
}

func TestSplitAnswersEmpty(t *testing.T) {
	assert.Empty(t, SplitAnswers(""))
	assert.Empty(t, SplitAnswers("\n  \n\t\n"))
}
