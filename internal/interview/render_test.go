package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderReport(t *testing.T) {
	got := RenderReport("Ai부업경험담",
		[]string{"What tool?", "What result?"},
		[]string{"GPT", "Profitable"},
	)

	want := "## 📊 Ai부업경험담 데이터 리포트\n\n" +
		"### 🔍 What tool?\n> GPT\n\n" +
		"### 🔍 What result?\n> Profitable\n\n"
	assert.Equal(t, want, got)
}

func TestRenderReportIsDeterministic(t *testing.T) {
	q := []string{"q0", "q1"}
	a := []string{"a0", "a1"}
	assert.Equal(t, RenderReport("자유수다", q, a), RenderReport("자유수다", q, a))
}

func TestRenderReportShortAnswers(t *testing.T) {
	got := RenderReport("자유수다",
		[]string{"q0", "q1", "q2"},
		[]string{"a0", "   "},
	)

	want := "## 📊 자유수다 데이터 리포트\n\n" +
		"### 🔍 q0\n> a0\n\n" +
		"### 🔍 q1\n> 답변 없음\n\n" +
		"### 🔍 q2\n> 답변 없음\n\n"
	assert.Equal(t, want, got)
}

func TestRenderTemplate(t *testing.T) {
	got := RenderTemplate("부업루트분석", []string{"q0", "q1"})

	want := "## 📊 부업루트분석 Intelligence Report\n\n" +
		"### 🔍 q0\n> \n\n" +
		"### 🔍 q1\n> \n\n"
	assert.Equal(t, want, got)
}

func TestDeriveTitle(t *testing.T) {
	assert.Equal(t, "GPT", DeriveTitle("Ai부업경험담", []string{"GPT", "Profitable"}))
	assert.Equal(t, "[Ai부업경험담] 데이터 리포트", DeriveTitle("Ai부업경험담", nil))
	assert.Equal(t, "[자유수다] 데이터 리포트", DeriveTitle("자유수다", []string{"   "}))
}
