package tui

import "github.com/pipeboard/pipeboard/internal/domain"

// Msg is the sealed interface for all board TUI messages.
// All message types must implement the sealed() method.
//
//sumtype:decl
type Msg interface {
	sealed()
}

// MsgBoardLoaded is sent when the authoritative board state arrives.
//
//nolint:govet // Logical field order preferred
type MsgBoardLoaded struct {
	Stages        []domain.Stage
	Opportunities []domain.Opportunity
	Err           error
}

func (MsgBoardLoaded) sealed() {}

// MsgMoveSettled is sent when a move request resolves.
//
//nolint:govet // Logical field order preferred
type MsgMoveSettled struct {
	Moved  *domain.Opportunity
	CardID string
	Err    error
}

func (MsgMoveSettled) sealed() {}

// MsgTick drives the periodic board refresh.
type MsgTick struct{}

func (MsgTick) sealed() {}
