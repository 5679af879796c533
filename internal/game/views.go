package game

import (
	"cmp"
	"slices"
)

type LeaderboardEntry struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type AnswerEntry struct {
	Name     string  `json:"name"`
	Answer   *string `json:"answer"`
	Revealed bool    `json:"revealed"`
}

type AnswerBoard struct {
	Question *Question     `json:"question"`
	Answers  []AnswerEntry `json:"answers"`
}

type HostTeam struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Score  int     `json:"score"`
	Answer *string `json:"answer"`
}

type HostState struct {
	Teams               []HostTeam `json:"teams"`
	Question            *Question  `json:"question"`
	QuestionHistory     []Question `json:"questionHistory"`
	DisplayMode         Mode       `json:"displayMode"`
	RevealedAnswers     []string   `json:"revealedAnswers"`
	HighlightedTeamName *string    `json:"highlightedTeamName"`
}

// activeTeams returns the roster in join order, the deterministic base
// ordering for every view.
func activeTeams(s *State) []*Team {
	teams := make([]*Team, 0, len(s.Teams))
	for _, t := range s.Teams {
		teams = append(teams, t)
	}
	slices.SortFunc(teams, func(a, b *Team) int {
		return cmp.Compare(a.Joined, b.Joined)
	})
	return teams
}

// Leaderboard sorts by score descending, ties broken by join order.
// Ranks are strictly positional 1..N; tied scores do not share a rank.
func Leaderboard(s *State) []LeaderboardEntry {
	teams := activeTeams(s)
	slices.SortStableFunc(teams, func(a, b *Team) int {
		return cmp.Compare(b.Score, a.Score)
	})

	board := make([]LeaderboardEntry, len(teams))
	for i, t := range teams {
		board[i] = LeaderboardEntry{Rank: i + 1, Name: t.Name, Score: t.Score}
	}
	return board
}

// AnswerBoardView bundles every active team's answer with the current
// question. Reveal flags may reference teams that have since left; that
// is fine, the flags simply never match a row here.
func AnswerBoardView(s *State) AnswerBoard {
	teams := activeTeams(s)
	answers := make([]AnswerEntry, len(teams))
	for i, t := range teams {
		answers[i] = AnswerEntry{
			Name:     t.Name,
			Answer:   t.Answer,
			Revealed: s.Revealed[t.Name],
		}
	}
	return AnswerBoard{Question: s.Question, Answers: answers}
}

func HostStateView(s *State) HostState {
	teams := activeTeams(s)
	hostTeams := make([]HostTeam, len(teams))
	for i, t := range teams {
		hostTeams[i] = HostTeam{ID: t.ID, Name: t.Name, Score: t.Score, Answer: t.Answer}
	}

	revealed := make([]string, 0, len(s.Revealed))
	for name := range s.Revealed {
		revealed = append(revealed, name)
	}
	slices.Sort(revealed)

	hs := HostState{
		Teams:           hostTeams,
		Question:        s.Question,
		QuestionHistory: s.History,
		DisplayMode:     s.Mode,
		RevealedAnswers: revealed,
	}
	if hs.QuestionHistory == nil {
		hs.QuestionHistory = []Question{}
	}
	if s.Highlighted != nil {
		hs.HighlightedTeamName = &s.Highlighted.Name
	}
	return hs
}

// SetDisplayMode switches the shared display and immediately pushes the
// matching view. Unknown modes are ignored.
func SetDisplayMode(s *State, mode Mode) []Event {
	if mode != ModeLeaderboard && mode != ModeAnswers {
		return nil
	}
	s.Mode = mode
	if mode == ModeAnswers {
		return []Event{{Type: EvtMode}, {Type: EvtAnswerBoard}}
	}
	return []Event{{Type: EvtMode}, {Type: EvtLeaderboard}}
}

// ToggleReveal flips the name in or out of the reveal set. The name is
// deliberately not checked against the roster.
func ToggleReveal(s *State, name string) []Event {
	if s.Revealed[name] {
		delete(s.Revealed, name)
	} else {
		s.Revealed[name] = true
	}
	return []Event{{Type: EvtAnswerBoard}, {Type: EvtHostState}}
}

// ToggleHighlight spotlights the named team, or clears the spotlight when
// that team is already highlighted. Unknown names are ignored.
func ToggleHighlight(s *State, name string) []Event {
	if s.Highlighted != nil && s.Highlighted.Name == name {
		s.Highlighted = nil
		return []Event{{Type: EvtHighlight}, {Type: EvtHostState}}
	}

	for _, t := range activeTeams(s) {
		if t.Name == name {
			s.Highlighted = &Highlight{Name: t.Name, Answer: t.Answer}
			return []Event{{Type: EvtHighlight}, {Type: EvtHostState}}
		}
	}
	return nil
}
