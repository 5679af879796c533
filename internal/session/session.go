package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/quizdeck/trivia-night-backend/internal/game"
	"github.com/quizdeck/trivia-night-backend/internal/types"
)

type Role string

const (
	RoleNone    Role = ""
	RoleHost    Role = "host"
	RoleTeam    Role = "team"
	RoleDisplay Role = "display"
)

type Msg interface{ isSessionMsg() }

// Connect registers a transport connection before it has announced a role.
type Connect struct {
	ConnID string
	Outbox chan types.ServerMessage
}

func (Connect) isSessionMsg() {}

type Disconnect struct{ ConnID string }

func (Disconnect) isSessionMsg() {}

type FromClient struct {
	ConnID string
	Msg    types.ClientMessage
}

func (FromClient) isSessionMsg() {}

type Shutdown struct{}

func (Shutdown) isSessionMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isSessionMsg() {}

// View reflects internal state for tests without data races.
type View struct {
	NumClients int
	Roles      map[string]Role
	State      game.State
}

type client struct {
	outbox chan types.ServerMessage
	role   Role
}

// Session is the single game session actor. Every inbound event is
// handled to completion, including all rebroadcasts, before the next one
// is read, so the state needs no locking.
type Session struct {
	inbox   chan Msg
	state   *game.State
	clients map[string]*client
	dropped []string // slow consumers cut during a broadcast, roster-cleaned after dispatch
	ctx     context.Context
	cancel  context.CancelFunc
	log     *zap.Logger
}

func New(parent context.Context, log *zap.Logger) *Session {
	ctx, cancel := context.WithCancel(parent)
	s := &Session{
		inbox:   make(chan Msg, 64),
		state:   game.NewState(),
		clients: make(map[string]*client),
		ctx:     ctx,
		cancel:  cancel,
		log:     log,
	}
	go s.loop()
	return s
}

func (s *Session) Inbox() chan<- Msg { return s.inbox }

func (s *Session) loop() {
	for {
		select {
		case <-s.ctx.Done():
			s.shutdown()
			return

		case m := <-s.inbox:
			switch msg := m.(type) {
			case Connect:
				s.clients[msg.ConnID] = &client{outbox: msg.Outbox}

			case Disconnect:
				c := s.clients[msg.ConnID]
				if c == nil {
					break
				}
				delete(s.clients, msg.ConnID)
				close(c.outbox)
				s.emit(msg.ConnID, game.Disconnect(s.state, msg.ConnID))

			case FromClient:
				s.dispatch(msg.ConnID, msg.Msg)

			case GetState:
				msg.Reply <- View{
					NumClients: len(s.clients),
					Roles:      s.roles(),
					State:      *s.state,
				}

			case Shutdown:
				s.shutdown()
				return
			}
			s.flushDropped()
		}
	}
}

func (s *Session) roles() map[string]Role {
	roles := make(map[string]Role, len(s.clients))
	for id, c := range s.clients {
		roles[id] = c.role
	}
	return roles
}

func (s *Session) shutdown() {
	for id, c := range s.clients {
		close(c.outbox)
		delete(s.clients, id)
	}
	s.cancel()
}

// dispatch routes one inbound event by name and caller role. Unknown
// events and role mismatches are dropped without a reply; a bad event
// must never take the session down for everyone else.
func (s *Session) dispatch(connID string, m types.ClientMessage) {
	c := s.clients[connID]
	if c == nil {
		return
	}

	switch m.Event {
	case "host:join":
		c.role = RoleHost
		s.sendTo(connID, types.ServerMessage{Event: "host:state", Data: game.HostStateView(s.state)})
		s.log.Info("host joined", zap.String("conn", connID))

	case "team:join":
		evs, err := game.Join(s.state, connID, m.Name)
		if err != nil {
			s.sendTo(connID, types.ServerMessage{Event: "join:error", Data: err.Error()})
			return
		}
		c.role = RoleTeam
		s.log.Info("team joined", zap.String("conn", connID), zap.String("name", s.state.Teams[connID].Name))
		s.emit(connID, evs)

	case "display:join":
		c.role = RoleDisplay
		s.catchUp(connID)

	case "submit":
		if c.role != RoleTeam {
			return
		}
		s.emit(connID, game.SubmitAnswer(s.state, connID, m.Answer))

	default:
		if c.role != RoleHost {
			return
		}
		cmd, ok := hostCommand(m)
		if !ok {
			s.log.Debug("unknown event", zap.String("event", m.Event))
			return
		}
		evs, err := game.Apply(s.state, cmd)
		if err != nil {
			return
		}
		s.emit(connID, evs)
	}
}

func hostCommand(m types.ClientMessage) (game.Command, bool) {
	switch m.Event {
	case "push-question":
		return game.Command{Type: game.CmdPushQuestion, Text: m.Text, QType: m.Type}, true
	case "clear-question":
		return game.Command{Type: game.CmdClearQuestion}, true
	case "award-points":
		return game.Command{Type: game.CmdAwardPoints, TeamID: m.TeamID, Delta: m.Delta}, true
	case "set-score":
		return game.Command{Type: game.CmdSetScore, TeamID: m.TeamID, Score: coerceScore(m.Score)}, true
	case "remove-team":
		return game.Command{Type: game.CmdRemoveTeam, TeamID: m.TeamID}, true
	case "highlight-team":
		return game.Command{Type: game.CmdHighlightTeam, TeamName: m.TeamName}, true
	case "reveal-answer":
		return game.Command{Type: game.CmdRevealAnswer, TeamName: m.TeamName}, true
	case "reset-game":
		return game.Command{Type: game.CmdResetGame}, true
	case "set-display":
		return game.Command{Type: game.CmdSetDisplay, Mode: game.Mode(m.Mode)}, true
	default:
		return game.Command{}, false
	}
}

// coerceScore accepts whatever JSON put in the score field; anything
// non-numeric lands at zero.
func coerceScore(v any) int {
	if f, ok := v.(float64); ok {
		return int(f)
	}
	return 0
}

// catchUp sends a display viewer the full current state so it renders
// correctly without waiting for the next mutation.
func (s *Session) catchUp(connID string) {
	s.sendTo(connID, types.ServerMessage{Event: "display:mode", Data: string(s.state.Mode)})
	s.sendTo(connID, types.ServerMessage{Event: "display:highlight", Data: s.state.Highlighted})
	if s.state.Mode == game.ModeAnswers {
		s.sendTo(connID, types.ServerMessage{Event: "display:answers", Data: game.AnswerBoardView(s.state)})
	} else {
		s.sendTo(connID, types.ServerMessage{Event: "leaderboard:update", Data: game.Leaderboard(s.state)})
	}
	if s.state.Question != nil {
		s.sendTo(connID, types.ServerMessage{Event: "question:new", Data: s.state.Question})
	}
}

// emit recomputes and delivers the views an operation asked for. origin
// is the connection whose command produced the events, the target for
// caller-only replies.
func (s *Session) emit(origin string, evs []game.Event) {
	for _, ev := range evs {
		switch ev.Type {
		case game.EvtLeaderboard:
			s.broadcastAll(types.ServerMessage{Event: "leaderboard:update", Data: game.Leaderboard(s.state)})
		case game.EvtHostState:
			s.broadcast(RoleHost, types.ServerMessage{Event: "host:state", Data: game.HostStateView(s.state)})
		case game.EvtAnswerBoard:
			s.broadcastAll(types.ServerMessage{Event: "display:answers", Data: game.AnswerBoardView(s.state)})
		case game.EvtHighlight:
			s.broadcastAll(types.ServerMessage{Event: "display:highlight", Data: s.state.Highlighted})
		case game.EvtMode:
			s.broadcastAll(types.ServerMessage{Event: "display:mode", Data: string(s.state.Mode)})
		case game.EvtQuestionNew:
			s.broadcast(RoleTeam, types.ServerMessage{Event: "question:new", Data: s.state.Question})
		case game.EvtQuestionClear:
			s.broadcast(RoleTeam, types.ServerMessage{Event: "question:clear"})
		case game.EvtReset:
			s.broadcastAll(types.ServerMessage{Event: "game:reset"})
		case game.EvtJoined:
			if t := s.state.Teams[origin]; t != nil {
				s.sendTo(origin, types.ServerMessage{Event: "join:success", Data: types.JoinSuccess{Name: t.Name, Question: s.state.Question}})
			}
		case game.EvtSubmitAck:
			s.sendTo(origin, types.ServerMessage{Event: "submit:ack"})
		}
	}
}

func (s *Session) broadcastAll(msg types.ServerMessage) {
	for id, c := range s.clients {
		s.deliver(id, c, msg)
	}
}

func (s *Session) broadcast(role Role, msg types.ServerMessage) {
	for id, c := range s.clients {
		if c.role == role {
			s.deliver(id, c, msg)
		}
	}
}

func (s *Session) sendTo(connID string, msg types.ServerMessage) {
	if c := s.clients[connID]; c != nil {
		s.deliver(connID, c, msg)
	}
}

func (s *Session) deliver(id string, c *client, msg types.ServerMessage) {
	select {
	case c.outbox <- msg:
	default:
		// Client is slow/full - drop them.
		close(c.outbox)
		delete(s.clients, id)
		s.dropped = append(s.dropped, id)
		s.log.Warn("dropping slow client", zap.String("conn", id))
	}
}

// flushDropped runs the roster disconnect path for clients cut mid
// broadcast, so a dropped team still leaves a rejoinable snapshot.
func (s *Session) flushDropped() {
	for len(s.dropped) > 0 {
		id := s.dropped[0]
		s.dropped = s.dropped[1:]
		s.emit(id, game.Disconnect(s.state, id))
	}
}
