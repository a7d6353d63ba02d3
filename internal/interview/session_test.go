package interview

import (
	"testing"

	"github.com/expgenwoo218/aibuup24/pkg/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionHappyPath(t *testing.T) {
	sess := NewSession(uuid.New())
	require.Equal(t, StatusSelectingCategory, sess.Status)
	require.Equal(t, KindCommunity, sess.Kind)

	questions := []string{"어떤 도구를 쓰셨나요?", "수익은 어땠나요?"}
	require.NoError(t, sess.SelectCategory("Ai부업경험담", model.RoleSilver, questions))
	assert.Equal(t, StatusAwaitingAnswer, sess.Status)
	assert.Equal(t, questions[0], sess.CurrentQuestion())

	done, err := sess.SubmitAnswer("GPT")
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, questions[1], sess.CurrentQuestion())

	done, err = sess.SubmitAnswer("쏠쏠했어요")
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, StatusSubmitting, sess.Status)
	assert.Equal(t, []string{"GPT", "쏠쏠했어요"}, sess.Answers)

	postID := uuid.New()
	sess.MarkComplete(postID)
	assert.Equal(t, StatusComplete, sess.Status)
	require.NotNil(t, sess.PostID)
	assert.Equal(t, postID, *sess.PostID)
}

func TestSessionAnswerAlignsWithQuestion(t *testing.T) {
	sess := NewSession(uuid.New())
	questions := []string{"q0", "q1", "q2"}
	require.NoError(t, sess.SelectCategory("자유수다", model.RoleSilver, questions))

	for i, q := range questions {
		assert.Equal(t, q, sess.CurrentQuestion())
		_, err := sess.SubmitAnswer("a" + q)
		require.NoError(t, err)
		require.Equal(t, "a"+questions[i], sess.Answers[i])
	}
}

func TestSelectCategoryRestricted(t *testing.T) {
	questions := []string{"질문"}

	sess := NewSession(uuid.New())
	err := sess.SelectCategory("실전수익인증", model.RoleSilver, questions)
	require.ErrorIs(t, err, ErrPermissionDenied)
	// rejection keeps the session open for another pick
	assert.Equal(t, StatusSelectingCategory, sess.Status)
	assert.Empty(t, sess.Category)

	require.NoError(t, sess.SelectCategory("실전수익인증", model.RoleGold, questions))

	admin := NewSession(uuid.New())
	require.NoError(t, admin.SelectCategory("비공개노하우", model.RoleAdmin, questions))
}

func TestSelectCategoryEmptyQuestions(t *testing.T) {
	sess := NewSession(uuid.New())
	err := sess.SelectCategory("자유수다", model.RoleSilver, nil)
	require.ErrorIs(t, err, ErrCatalogUnavailable)
	assert.Equal(t, StatusSelectingCategory, sess.Status)
}

func TestSubmitAnswerValidation(t *testing.T) {
	sess := NewSession(uuid.New())

	_, err := sess.SubmitAnswer("too early")
	require.ErrorIs(t, err, ErrSessionState)

	require.NoError(t, sess.SelectCategory("자유수다", model.RoleSilver, []string{"q0"}))

	_, err = sess.SubmitAnswer("   ")
	require.ErrorIs(t, err, ErrEmptyAnswer)
	assert.Empty(t, sess.Answers)

	done, err := sess.SubmitAnswer("  답변  ")
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "답변", sess.Answers[0])
}

func TestRetryAfterFailedSubmission(t *testing.T) {
	sess := NewSession(uuid.New())
	require.NoError(t, sess.SelectCategory("자유수다", model.RoleSilver, []string{"q0", "q1"}))

	_, err := sess.SubmitAnswer("a0")
	require.NoError(t, err)
	done, err := sess.SubmitAnswer("a1")
	require.NoError(t, err)
	require.True(t, done)

	// persistence failed; the session returns to AWAITING_ANSWER with its
	// answers intact and the next submit retries without appending
	sess.MarkFailed()
	assert.Equal(t, StatusAwaitingAnswer, sess.Status)
	assert.Len(t, sess.Answers, 2)

	done, err = sess.SubmitAnswer("다시 시도")
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, []string{"a0", "a1"}, sess.Answers)
	assert.Equal(t, StatusSubmitting, sess.Status)
}

func TestScamReportSession(t *testing.T) {
	sess := NewScamReportSession(uuid.New(), "  익명의 모험가  ")
	assert.Equal(t, KindScamReport, sess.Kind)
	assert.Equal(t, model.CategoryScamReport, sess.Category)
	assert.Equal(t, "익명의 모험가", sess.AuthorAlias)
	assert.Equal(t, StatusAwaitingAnswer, sess.Status)
	require.Len(t, sess.Questions, len(ScamReportQuestions))
	assert.Equal(t, ScamReportQuestions[0], sess.CurrentQuestion())

	// the fixed script is a copy, not a shared slice
	sess.Questions[0] = "변조"
	assert.NotEqual(t, "변조", ScamReportQuestions[0])
}

func TestSynthesisFlow(t *testing.T) {
	sess := NewSession(uuid.New())
	questions := []string{"q0", "q1", "q2"}

	require.NoError(t, sess.BeginSynthesis("Ai부업경험담", questions))
	assert.Equal(t, StatusSynthesizing, sess.Status)

	// one answer short: the slot stays empty for the renderer to fill
	require.NoError(t, sess.FinishSynthesis([]string{"a0", "a1"}))
	assert.Equal(t, StatusSubmitting, sess.Status)
	assert.Equal(t, []string{"a0", "a1", ""}, sess.Answers)
}

func TestSynthesisStateGuards(t *testing.T) {
	sess := NewSession(uuid.New())
	require.ErrorIs(t, sess.FinishSynthesis([]string{"a0"}), ErrSessionState)
	require.ErrorIs(t, sess.BeginSynthesis("자유수다", nil), ErrCatalogUnavailable)

	require.NoError(t, sess.BeginSynthesis("자유수다", []string{"q0"}))
	require.ErrorIs(t, sess.BeginSynthesis("자유수다", []string{"q0"}), ErrSessionState)
}

func TestSessionState(t *testing.T) {
	sess := NewSession(uuid.New())
	require.NoError(t, sess.SelectCategory("자유수다", model.RoleSilver, []string{"q0", "q1"}))
	_, err := sess.SubmitAnswer("a0")
	require.NoError(t, err)

	st := sess.State()
	assert.Equal(t, sess.ID, st.SessionID)
	assert.Equal(t, string(StatusAwaitingAnswer), st.Status)
	assert.Equal(t, "q1", st.Prompt)
	assert.Equal(t, 1, st.QuestionIndex)
	assert.Equal(t, 2, st.QuestionCount)
	assert.Nil(t, st.PostID)
}
