package interview

import (
	"context"
	"fmt"
	"sort"

	"github.com/expgenwoo218/aibuup24/pkg/model"
)

// QuestionSource yields a category's interview script, order_index ascending.
type QuestionSource interface {
	ListByCategory(ctx context.Context, category string) ([]model.ChatQuestion, error)
}

// DefaultQuestions is the substitute script for categories with no stored
// questions. It must never be empty: an empty script would break the
// interview's terminate condition.
var DefaultQuestions = []string{
	"제목을 입력해주세요.",
	"상세 내용을 기록해주세요.",
}

// ResolveQuestions snapshots the question texts for a category. A store error
// or an empty result falls back to DefaultQuestions; the returned error in
// that case wraps ErrCatalogUnavailable and is for logging only, the script
// is still usable.
func ResolveQuestions(ctx context.Context, src QuestionSource, category string) ([]string, error) {
	rows, err := src.ListByCategory(ctx, category)
	if err != nil {
		return append([]string(nil), DefaultQuestions...),
			fmt.Errorf("%w: %s: %v", ErrCatalogUnavailable, category, err)
	}
	if len(rows) == 0 {
		return append([]string(nil), DefaultQuestions...), nil
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].OrderIndex < rows[j].OrderIndex })
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.QuestionText
	}
	return out, nil
}
