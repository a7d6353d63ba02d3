package interview

import (
	"fmt"
	"strings"
)

// AnswerPlaceholder fills a section whose answer is missing or blank.
const AnswerPlaceholder = "답변 없음"

// RenderReport assembles the final Markdown document from a completed
// interview. Pure and deterministic: identical inputs produce identical
// output. A short answer slice never panics; missing entries render as the
// placeholder.
func RenderReport(category string, questions, answers []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 📊 %s 데이터 리포트\n\n", category)
	for i, q := range questions {
		a := AnswerPlaceholder
		if i < len(answers) && strings.TrimSpace(answers[i]) != "" {
			a = answers[i]
		}
		fmt.Fprintf(&b, "### 🔍 %s\n> %s\n\n", q, a)
	}
	return b.String()
}

// RenderTemplate builds the direct-write prefill: the report skeleton with
// empty quote lines for the author to fill in by hand.
func RenderTemplate(category string, questions []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 📊 %s Intelligence Report\n\n", category)
	for _, q := range questions {
		fmt.Fprintf(&b, "### 🔍 %s\n> \n\n", q)
	}
	return b.String()
}

// DeriveTitle picks the record title: the first answer when present,
// otherwise a fallback naming the category.
func DeriveTitle(category string, answers []string) string {
	if len(answers) > 0 {
		if t := strings.TrimSpace(answers[0]); t != "" {
			return t
		}
	}
	return fmt.Sprintf("[%s] 데이터 리포트", category)
}
