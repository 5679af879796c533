package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeaderboard_SortedWithPositionalRanks(t *testing.T) {
	s := NewState()
	mustJoin(t, s, "c1", "Alice")
	mustJoin(t, s, "c2", "Bob")
	mustJoin(t, s, "c3", "Carol")
	mustJoin(t, s, "c4", "Dave")
	SetScore(s, "c2", 20)
	SetScore(s, "c3", 20)
	SetScore(s, "c4", 5)

	board := Leaderboard(s)
	require.Equal(t, []LeaderboardEntry{
		{Rank: 1, Name: "Bob", Score: 20},    // joined before Carol, wins the tie
		{Rank: 2, Name: "Carol", Score: 20},
		{Rank: 3, Name: "Dave", Score: 5},
		{Rank: 4, Name: "Alice", Score: 0},
	}, board)
}

func TestLeaderboard_Empty(t *testing.T) {
	s := NewState()
	require.Empty(t, Leaderboard(s))
}

func TestAnswerBoard_SubmittedAnswerShowsUnrevealed(t *testing.T) {
	s := NewState()
	PushQuestion(s, "2+2?", "text")
	mustJoin(t, s, "c1", "Bob")
	SubmitAnswer(s, "c1", "4")
	SetDisplayMode(s, ModeAnswers)

	board := AnswerBoardView(s)
	require.Equal(t, "2+2?", board.Question.Text)
	require.Equal(t, []AnswerEntry{{Name: "Bob", Answer: strptr("4"), Revealed: false}}, board.Answers)
}

func TestAnswerBoard_UnansweredTeamHasNilAnswer(t *testing.T) {
	s := NewState()
	PushQuestion(s, "q", "text")
	mustJoin(t, s, "c1", "Alice")
	mustJoin(t, s, "c2", "Bob")
	SubmitAnswer(s, "c2", "hi")
	ToggleReveal(s, "Bob")

	board := AnswerBoardView(s)
	require.Equal(t, []AnswerEntry{
		{Name: "Alice", Answer: nil, Revealed: false},
		{Name: "Bob", Answer: strptr("hi"), Revealed: true},
	}, board.Answers)
}

func TestToggleReveal_FlipsMembership(t *testing.T) {
	s := NewState()

	// Names are not validated against the roster.
	evs := ToggleReveal(s, "Nobody")
	require.Equal(t, []Event{{Type: EvtAnswerBoard}, {Type: EvtHostState}}, evs)
	require.True(t, s.Revealed["Nobody"])

	ToggleReveal(s, "Nobody")
	require.Empty(t, s.Revealed)
}

func TestToggleHighlight_SecondToggleClears(t *testing.T) {
	s := NewState()
	PushQuestion(s, "q", "text")
	mustJoin(t, s, "c1", "Alice")
	SubmitAnswer(s, "c1", "42")

	ToggleHighlight(s, "Alice")
	require.NotNil(t, s.Highlighted)
	require.Equal(t, "Alice", s.Highlighted.Name)
	require.Equal(t, strptr("42"), s.Highlighted.Answer)

	ToggleHighlight(s, "Alice")
	require.Nil(t, s.Highlighted)
}

func TestToggleHighlight_UnknownNameNoOp(t *testing.T) {
	s := NewState()
	require.Nil(t, ToggleHighlight(s, "Nobody"))
	require.Nil(t, s.Highlighted)
}

func TestToggleHighlight_SnapshotIsFrozen(t *testing.T) {
	s := NewState()
	PushQuestion(s, "q", "text")
	mustJoin(t, s, "c1", "Alice")
	SubmitAnswer(s, "c1", "first")
	ToggleHighlight(s, "Alice")

	SubmitAnswer(s, "c1", "second")
	require.Equal(t, strptr("first"), s.Highlighted.Answer)
}

func TestSetDisplayMode_PushesMatchingView(t *testing.T) {
	s := NewState()

	evs := SetDisplayMode(s, ModeAnswers)
	require.Equal(t, []Event{{Type: EvtMode}, {Type: EvtAnswerBoard}}, evs)
	require.Equal(t, ModeAnswers, s.Mode)

	evs = SetDisplayMode(s, ModeLeaderboard)
	require.Equal(t, []Event{{Type: EvtMode}, {Type: EvtLeaderboard}}, evs)
}

func TestSetDisplayMode_UnknownModeIgnored(t *testing.T) {
	s := NewState()
	require.Nil(t, SetDisplayMode(s, "pie-charts"))
	require.Equal(t, ModeLeaderboard, s.Mode)
}

func TestHostStateView(t *testing.T) {
	s := NewState()
	mustJoin(t, s, "c1", "Alice")
	PushQuestion(s, "q1", "text")
	SubmitAnswer(s, "c1", "a")
	ToggleReveal(s, "Alice")
	ToggleHighlight(s, "Alice")
	SetDisplayMode(s, ModeAnswers)

	hs := HostStateView(s)
	require.Equal(t, []HostTeam{{ID: "c1", Name: "Alice", Score: 0, Answer: strptr("a")}}, hs.Teams)
	require.Equal(t, 1, hs.Question.Number)
	require.Len(t, hs.QuestionHistory, 1)
	require.Equal(t, ModeAnswers, hs.DisplayMode)
	require.Equal(t, []string{"Alice"}, hs.RevealedAnswers)
	require.Equal(t, strptr("Alice"), hs.HighlightedTeamName)
}
