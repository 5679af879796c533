package game

import "strings"

// PushQuestion starts a new round: bumps the question counter, appends to
// history, clears the reveal set and highlight, and wipes every team's
// stored answer. A question whose text trims to empty is a silent no-op;
// an empty question would still destroy round state, so it is refused.
func PushQuestion(s *State, text, qtype string) []Event {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if qtype == "" {
		qtype = "text"
	}

	s.QuestionNum++
	q := Question{Text: text, Number: s.QuestionNum, Type: qtype}
	s.Question = &q
	s.History = append(s.History, q)

	clear(s.Revealed)
	s.Highlighted = nil
	for _, t := range s.Teams {
		t.Answer = nil
	}

	return []Event{
		{Type: EvtHighlight},
		{Type: EvtQuestionNew},
		{Type: EvtHostState},
		{Type: EvtLeaderboard},
	}
}

// ClearQuestion drops the current question pointer. History, scores, and
// answers already submitted stay put.
func ClearQuestion(s *State) []Event {
	s.Question = nil
	return []Event{{Type: EvtQuestionClear}, {Type: EvtHostState}}
}

// ResetGame returns every piece of session state to its initial value.
func ResetGame(s *State) []Event {
	clear(s.Teams)
	clear(s.Disconnected)
	clear(s.Revealed)
	s.Question = nil
	s.QuestionNum = 0
	s.History = nil
	s.Highlighted = nil
	s.Mode = ModeLeaderboard
	s.joinSeq = 0

	return []Event{
		{Type: EvtReset},
		{Type: EvtHighlight},
		{Type: EvtLeaderboard},
		{Type: EvtHostState},
	}
}
