package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushQuestion_NumbersAreMonotonicAndHistoryAppends(t *testing.T) {
	s := NewState()

	for i := 1; i <= 5; i++ {
		evs := PushQuestion(s, "question", "text")
		require.NotEmpty(t, evs)
		require.Equal(t, i, s.Question.Number)
		require.Len(t, s.History, i)
		require.Equal(t, i, s.History[i-1].Number)
	}
}

func TestPushQuestion_DefaultsTypeToText(t *testing.T) {
	s := NewState()
	PushQuestion(s, "  What year?  ", "")
	require.Equal(t, "What year?", s.Question.Text)
	require.Equal(t, "text", s.Question.Type)
}

func TestPushQuestion_EmptyTextIsNoOp(t *testing.T) {
	s := NewState()
	require.Nil(t, PushQuestion(s, "   ", "text"))
	require.Nil(t, s.Question)
	require.Empty(t, s.History)
	require.Zero(t, s.QuestionNum)
}

func TestPushQuestion_ResetsRoundState(t *testing.T) {
	s := NewState()
	mustJoin(t, s, "c1", "Alice")
	mustJoin(t, s, "c2", "Bob")
	PushQuestion(s, "q1", "text")
	SubmitAnswer(s, "c1", "a")
	SubmitAnswer(s, "c2", "b")
	ToggleReveal(s, "Alice")
	ToggleHighlight(s, "Bob")

	evs := PushQuestion(s, "q2", "text")
	require.Contains(t, evs, Event{Type: EvtHighlight})
	require.Contains(t, evs, Event{Type: EvtQuestionNew})

	for _, team := range s.Teams {
		require.Nil(t, team.Answer)
	}
	require.Empty(t, s.Revealed)
	require.Nil(t, s.Highlighted)
}

func TestClearQuestion_KeepsHistoryScoresAnswers(t *testing.T) {
	s := NewState()
	mustJoin(t, s, "c1", "Alice")
	PushQuestion(s, "q1", "text")
	SubmitAnswer(s, "c1", "a")
	AwardPoints(s, "c1", 5)

	evs := ClearQuestion(s)
	require.Equal(t, []Event{{Type: EvtQuestionClear}, {Type: EvtHostState}}, evs)
	require.Nil(t, s.Question)
	require.Len(t, s.History, 1)
	require.Equal(t, 5, s.Teams["c1"].Score)
	require.Equal(t, strptr("a"), s.Teams["c1"].Answer)
}

func TestResetGame_RestoresInitialState(t *testing.T) {
	s := NewState()
	mustJoin(t, s, "c1", "Alice")
	mustJoin(t, s, "c2", "Bob")
	PushQuestion(s, "q1", "text")
	SubmitAnswer(s, "c1", "a")
	AwardPoints(s, "c1", 5)
	ToggleReveal(s, "Alice")
	ToggleHighlight(s, "Alice")
	SetDisplayMode(s, ModeAnswers)
	Disconnect(s, "c2")

	evs := ResetGame(s)
	require.Equal(t, EvtReset, evs[0].Type)

	require.Empty(t, s.Teams)
	require.Empty(t, s.Disconnected)
	require.Nil(t, s.Question)
	require.Zero(t, s.QuestionNum)
	require.Empty(t, s.History)
	require.Empty(t, s.Revealed)
	require.Nil(t, s.Highlighted)
	require.Equal(t, ModeLeaderboard, s.Mode)

	// The next question starts counting from 1 again.
	PushQuestion(s, "fresh", "text")
	require.Equal(t, 1, s.Question.Number)
}
