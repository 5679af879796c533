package game

import "errors"

var ErrNameRequired = errors.New("name required")
var ErrNameTooLong = errors.New("too long")
var ErrNameTaken = errors.New("name taken")
var ErrUnsupportedCommand = errors.New("unsupported command")

// MaxNameLen bounds team names after trimming.
const MaxNameLen = 30

type Mode string

const (
	ModeLeaderboard Mode = "leaderboard"
	ModeAnswers     Mode = "answers"
)

type Team struct {
	ID     string  // connection id while connected
	Name   string
	Score  int
	Answer *string // nil until the team answers the current question
	Joined int     // join sequence, used as the leaderboard tie-break
}

// DisconnectedTeam preserves a team's progress across a drop so a rejoin
// under the same name resumes where it left off.
type DisconnectedTeam struct {
	Name   string
	Score  int
	Answer *string
}

type Question struct {
	Text   string `json:"text"`
	Number int    `json:"number"`
	Type   string `json:"type"`
}

// Highlight is a snapshot taken at toggle time. The answer is deliberately
// not refreshed if the team resubmits; the host re-toggles to refresh.
type Highlight struct {
	Name   string  `json:"name"`
	Answer *string `json:"answer"`
}

// State is the authoritative session state. It performs no validation of
// its own; the operations in this package are the only mutators.
type State struct {
	Teams        map[string]*Team            // keyed by connection id
	Disconnected map[string]DisconnectedTeam // keyed by lowercased name
	Question     *Question
	QuestionNum  int
	History      []Question
	Mode         Mode
	Revealed     map[string]bool // team names whose answers are shown
	Highlighted  *Highlight
	joinSeq      int
}

func NewState() *State {
	return &State{
		Teams:        make(map[string]*Team),
		Disconnected: make(map[string]DisconnectedTeam),
		Mode:         ModeLeaderboard,
		Revealed:     make(map[string]bool),
	}
}

func (s *State) nextSeq() int {
	s.joinSeq++
	return s.joinSeq
}

type CommandType string

const (
	CmdJoinTeam      CommandType = "JoinTeam"
	CmdSubmitAnswer  CommandType = "SubmitAnswer"
	CmdPushQuestion  CommandType = "PushQuestion"
	CmdClearQuestion CommandType = "ClearQuestion"
	CmdAwardPoints   CommandType = "AwardPoints"
	CmdSetScore      CommandType = "SetScore"
	CmdRemoveTeam    CommandType = "RemoveTeam"
	CmdHighlightTeam CommandType = "HighlightTeam"
	CmdRevealAnswer  CommandType = "RevealAnswer"
	CmdResetGame     CommandType = "ResetGame"
	CmdSetDisplay    CommandType = "SetDisplay"
)

type Command struct {
	Type     CommandType
	ConnID   string // caller identity, filled in by the gateway
	Name     string // JoinTeam
	Answer   string // SubmitAnswer
	Text     string // PushQuestion
	QType    string // PushQuestion
	TeamID   string // AwardPoints, SetScore, RemoveTeam
	TeamName string // HighlightTeam, RevealAnswer
	Delta    int
	Score    int
	Mode     Mode
}

type EventType string

// Events name the rebroadcasts an operation requires. The gateway
// recomputes each view from state when it delivers them.
const (
	EvtLeaderboard   EventType = "Leaderboard"   // leaderboard:update, everyone
	EvtHostState     EventType = "HostState"     // host:state, host group
	EvtAnswerBoard   EventType = "AnswerBoard"   // display:answers, everyone
	EvtHighlight     EventType = "Highlight"     // display:highlight, everyone
	EvtMode          EventType = "Mode"          // display:mode, everyone
	EvtQuestionNew   EventType = "QuestionNew"   // question:new, teams group
	EvtQuestionClear EventType = "QuestionClear" // question:clear, teams group
	EvtReset         EventType = "Reset"         // game:reset, everyone
	EvtJoined        EventType = "Joined"        // join:success, caller only
	EvtSubmitAck     EventType = "SubmitAck"     // submit:ack, caller only
)

type Event struct {
	Type EventType
}

// Apply routes a command to its operation. A nil event slice with a nil
// error means the command was a silent no-op.
func Apply(s *State, cmd Command) ([]Event, error) {
	switch cmd.Type {
	case CmdJoinTeam:
		return Join(s, cmd.ConnID, cmd.Name)
	case CmdSubmitAnswer:
		return SubmitAnswer(s, cmd.ConnID, cmd.Answer), nil
	case CmdPushQuestion:
		return PushQuestion(s, cmd.Text, cmd.QType), nil
	case CmdClearQuestion:
		return ClearQuestion(s), nil
	case CmdAwardPoints:
		return AwardPoints(s, cmd.TeamID, cmd.Delta), nil
	case CmdSetScore:
		return SetScore(s, cmd.TeamID, cmd.Score), nil
	case CmdRemoveTeam:
		return RemoveTeam(s, cmd.TeamID), nil
	case CmdHighlightTeam:
		return ToggleHighlight(s, cmd.TeamName), nil
	case CmdRevealAnswer:
		return ToggleReveal(s, cmd.TeamName), nil
	case CmdResetGame:
		return ResetGame(s), nil
	case CmdSetDisplay:
		return SetDisplayMode(s, cmd.Mode), nil
	default:
		return nil, ErrUnsupportedCommand
	}
}
