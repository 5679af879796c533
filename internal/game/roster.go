package game

import (
	"strings"
	"unicode/utf8"
)

// Join registers a team under the caller's connection id. If a
// disconnected snapshot exists under the same lowercased name, its score
// and answer carry over and the snapshot is consumed.
func Join(s *State, connID, name string) ([]Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		return nil, ErrNameTooLong
	}

	key := strings.ToLower(name)
	for _, t := range s.Teams {
		if strings.ToLower(t.Name) == key {
			return nil, ErrNameTaken
		}
	}

	team := &Team{ID: connID, Name: name, Joined: s.nextSeq()}
	if snap, ok := s.Disconnected[key]; ok {
		team.Score = snap.Score
		team.Answer = snap.Answer
		delete(s.Disconnected, key)
	}
	s.Teams[connID] = team

	return []Event{{Type: EvtJoined}, {Type: EvtLeaderboard}, {Type: EvtHostState}}, nil
}

// SubmitAnswer stores the trimmed answer. An empty string is a valid
// answer, distinct from not having answered. No-op when the caller is not
// a registered team or no question is active.
func SubmitAnswer(s *State, connID, answer string) []Event {
	team, ok := s.Teams[connID]
	if !ok || s.Question == nil {
		return nil
	}
	trimmed := strings.TrimSpace(answer)
	team.Answer = &trimmed

	evs := []Event{{Type: EvtSubmitAck}, {Type: EvtHostState}}
	if s.Mode == ModeAnswers {
		evs = append(evs, Event{Type: EvtAnswerBoard})
	}
	return evs
}

// AwardPoints adds delta to the team's score, flooring at zero.
func AwardPoints(s *State, teamID string, delta int) []Event {
	team, ok := s.Teams[teamID]
	if !ok {
		return nil
	}
	team.Score = max(0, team.Score+delta)
	return []Event{{Type: EvtLeaderboard}, {Type: EvtHostState}}
}

// SetScore replaces the team's score, flooring at zero.
func SetScore(s *State, teamID string, score int) []Event {
	team, ok := s.Teams[teamID]
	if !ok {
		return nil
	}
	team.Score = max(0, score)
	return []Event{{Type: EvtLeaderboard}, {Type: EvtHostState}}
}

// RemoveTeam deletes the active entry outright. The disconnected snapshot
// under that name, if any, is left alone.
func RemoveTeam(s *State, teamID string) []Event {
	if _, ok := s.Teams[teamID]; !ok {
		return nil
	}
	delete(s.Teams, teamID)
	return []Event{{Type: EvtLeaderboard}, {Type: EvtHostState}}
}

// Disconnect snapshots the team for a later rejoin and removes the active
// entry. A newer snapshot overwrites any prior one under the same name.
func Disconnect(s *State, connID string) []Event {
	team, ok := s.Teams[connID]
	if !ok {
		return nil
	}
	s.Disconnected[strings.ToLower(team.Name)] = DisconnectedTeam{
		Name:   team.Name,
		Score:  team.Score,
		Answer: team.Answer,
	}
	delete(s.Teams, connID)
	return []Event{{Type: EvtLeaderboard}, {Type: EvtHostState}}
}
