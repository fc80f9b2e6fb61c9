// Package tui implements the interactive pipeline board.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pipeboard/pipeboard/internal/board"
	"github.com/pipeboard/pipeboard/internal/domain"
	"github.com/pipeboard/pipeboard/internal/usecase"
)

// Model is the board TUI model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	loadBoard *usecase.LoadBoard
	moveOpp   *usecase.MoveOpportunity
	logger    domain.Logger

	// Board state
	snap  *board.Snapshot
	coord *board.Coordinator
	recon *board.Reconciler

	// A refetch that arrived mid-drag or mid-reconciliation; adopted
	// once the board settles. Latest arrival wins.
	staleBoard *MsgBoardLoaded

	stages []domain.Stage
	detail *domain.Opportunity

	// Components
	keys   KeyMap
	styles Styles
	mouse  board.Recognizer

	// Status line
	status    string
	statusErr bool

	refreshEvery time.Duration

	// Numeric state
	colCursor  int
	cardCursor int
	width      int
	height     int

	// Boolean state
	hideWeighted bool
	loading      bool
}

// New creates a new board TUI model.
func New(loadBoard *usecase.LoadBoard, moveOpp *usecase.MoveOpportunity, logger domain.Logger, cfg *domain.Config) *Model {
	snap := board.NewSnapshot(nil)
	return &Model{
		loadBoard:    loadBoard,
		moveOpp:      moveOpp,
		logger:       logger,
		snap:         snap,
		coord:        board.NewCoordinator(snap),
		recon:        board.NewReconciler(),
		keys:         DefaultKeyMap(),
		styles:       DefaultStyles(),
		refreshEvery: cfg.Board.RefreshInterval.Std(),
		hideWeighted: cfg.Board.HideWeighted,
		loading:      true,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.tick())
}

// load returns a command that fetches the authoritative board state.
func (m *Model) load() tea.Cmd {
	return func() tea.Msg {
		out, err := m.loadBoard.Execute(context.Background())
		if err != nil {
			return MsgBoardLoaded{Err: err}
		}
		return MsgBoardLoaded{Stages: out.Stages, Opportunities: out.Opportunities}
	}
}

// tick schedules the next periodic refresh.
func (m *Model) tick() tea.Cmd {
	if m.refreshEvery <= 0 {
		return nil
	}
	return tea.Tick(m.refreshEvery, func(time.Time) tea.Msg {
		return MsgTick{}
	})
}

// moveCmd returns a command that issues the authoritative move request.
func (m *Model) moveCmd(mv board.Move) tea.Cmd {
	return func() tea.Msg {
		out, err := m.moveOpp.Execute(context.Background(), usecase.MoveOpportunityInput{
			ID:          mv.CardID,
			StageID:     mv.StageID,
			FromStageID: mv.FromStage,
			Index:       mv.Index,
		})
		if err != nil {
			return MsgMoveSettled{CardID: mv.CardID, Err: err}
		}
		return MsgMoveSettled{CardID: mv.CardID, Moved: out.Moved}
	}
}

// settled returns true when no drag is active and no move is in flight.
// Only then may a refetched authoritative list replace the snapshot.
func (m *Model) settled() bool {
	return !m.coord.Dragging() && !m.recon.HasPending()
}

// visibleStages returns the board columns, appending the fallback
// bucket when any card has a dangling stage reference.
func (m *Model) visibleStages() []domain.Stage {
	if len(m.snap.Unassigned(m.stages)) == 0 {
		return m.stages
	}
	out := make([]domain.Stage, 0, len(m.stages)+1)
	out = append(out, m.stages...)
	return append(out, domain.UnassignedStage())
}

// layout returns the board geometry for the current terminal size.
func (m *Model) layout() layout {
	return newLayout(m.visibleStages(), m.width)
}

// currentColumnCards returns the cards in the column under the cursor.
func (m *Model) currentColumnCards() []domain.Opportunity {
	lay := m.layout()
	if m.colCursor >= len(lay.stages) {
		return nil
	}
	return lay.cardsFor(m.snap, lay.stages[m.colCursor])
}

// currentCard returns the card under the cursor.
func (m *Model) currentCard() (domain.Opportunity, bool) {
	cards := m.currentColumnCards()
	if m.cardCursor < 0 || m.cardCursor >= len(cards) {
		return domain.Opportunity{}, false
	}
	return cards[m.cardCursor], true
}

// clampCursor keeps the cursor inside the visible board.
func (m *Model) clampCursor() {
	stages := m.visibleStages()
	if m.colCursor >= len(stages) {
		m.colCursor = len(stages) - 1
	}
	if m.colCursor < 0 {
		m.colCursor = 0
	}
	cards := m.currentColumnCards()
	if m.cardCursor >= len(cards) {
		m.cardCursor = len(cards) - 1
	}
	if m.cardCursor < 0 {
		m.cardCursor = 0
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MsgBoardLoaded:
		return m.handleBoardLoaded(msg)

	case MsgMoveSettled:
		return m.handleMoveSettled(msg)

	case MsgTick:
		var cmd tea.Cmd
		if !m.loading && m.settled() {
			m.loading = true
			cmd = m.load()
		}
		return m, tea.Batch(cmd, m.tick())
	}

	return m, nil
}

// handleBoardLoaded applies (or stashes) a refetched authoritative list.
func (m *Model) handleBoardLoaded(msg MsgBoardLoaded) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.Err != nil {
		m.setError(fmt.Sprintf("load failed: %v", msg.Err))
		return m, nil
	}
	if !m.settled() {
		// A drag or reconciliation owns the snapshot; adopting now
		// would clobber the speculative state. Stash until settled.
		m.staleBoard = &msg
		return m, nil
	}
	m.adopt(msg)
	return m, nil
}

// adopt replaces local state with the authoritative list verbatim.
func (m *Model) adopt(msg MsgBoardLoaded) {
	before := m.snap.Assignments()
	m.stages = msg.Stages
	m.snap.Adopt(msg.Opportunities)
	m.staleBoard = nil
	m.clampCursor()

	for id, stage := range m.snap.Assignments() {
		if prev, ok := before[id]; ok && prev != stage {
			m.logger.Debug("board", fmt.Sprintf("server moved %s from %s to %s", id, prev, stage))
		}
	}
}

// adoptStaleIfSettled applies a stashed refetch once the board settles.
func (m *Model) adoptStaleIfSettled() {
	if m.staleBoard != nil && m.settled() {
		m.adopt(*m.staleBoard)
	}
}

// handleMoveSettled reconciles a resolved move request.
func (m *Model) handleMoveSettled(msg MsgMoveSettled) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// Snap the card back to where the drag started. Other cards'
		// in-flight moves are untouched.
		m.recon.Rollback(msg.CardID, m.snap)
		m.setError(fmt.Sprintf("move failed: %v", msg.Err))
		m.clampCursor()
		m.adoptStaleIfSettled()
		return m, nil
	}

	m.recon.Resolve(msg.CardID)
	if msg.Moved != nil {
		// The server may have normalized the card (clamped probability,
		// adjusted value); its view wins without waiting for a refetch.
		_ = m.snap.Replace(*msg.Moved)
	}
	m.setStatus(fmt.Sprintf("moved %s", msg.CardID))
	m.adoptStaleIfSettled()

	// The server's state is ground truth; refetch so any
	// normalization it applied wins over the optimistic copy.
	var cmd tea.Cmd
	if m.settled() {
		m.loading = true
		cmd = m.load()
	}
	return m, cmd
}

// handleKey routes key events by mode.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail != nil {
		return m.handleDetailKey(msg)
	}
	if m.coord.Dragging() {
		return m.handleGrabKey(msg)
	}
	return m.handleNormalKey(msg)
}

// handleDetailKey handles keys while the card detail dialog is open.
func (m *Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	default:
		m.detail = nil
		return m, nil
	}
}

// handleNormalKey handles keys with no drag in progress.
func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		if m.colCursor > 0 {
			m.colCursor--
			m.clampCursor()
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.colCursor < len(m.visibleStages())-1 {
			m.colCursor++
			m.clampCursor()
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cardCursor > 0 {
			m.cardCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cardCursor < len(m.currentColumnCards())-1 {
			m.cardCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Grab):
		return m.grabCurrent()

	case key.Matches(msg, m.keys.Open):
		if card, ok := m.currentCard(); ok {
			m.detail = &card
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.load()
	}

	return m, nil
}

// grabCurrent begins a drag on the card under the cursor.
func (m *Model) grabCurrent() (tea.Model, tea.Cmd) {
	card, ok := m.currentCard()
	if !ok {
		return m, nil
	}
	if m.recon.Pending(card.ID) {
		m.setError(fmt.Sprintf("%s has a move in flight, wait for it to settle", card.Name))
		return m, nil
	}
	if err := m.coord.Begin(card.ID); err != nil {
		m.setError(err.Error())
		return m, nil
	}
	m.setStatus(fmt.Sprintf("moving %s", card.Name))
	return m, nil
}

// handleGrabKey handles keys while a card is grabbed.
func (m *Model) handleGrabKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.coord.Cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.hoverColumnOffset(-1)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.hoverColumnOffset(1)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.hoverCardOffset(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.hoverCardOffset(1)
		return m, nil

	case key.Matches(msg, m.keys.Drop):
		return m.dropGrabbed()

	case key.Matches(msg, m.keys.Cancel):
		m.coord.Cancel()
		m.setStatus("cancelled")
		m.clampCursor()
		m.adoptStaleIfSettled()
		return m, nil
	}

	return m, nil
}

// hoverColumnOffset hovers the column offset steps away from the
// grabbed card's current speculative stage.
func (m *Model) hoverColumnOffset(offset int) {
	card, ok := m.snap.Find(m.coord.DraggingCard())
	if !ok {
		return
	}
	stages := m.visibleStages()
	cur := domain.StageIndex(stages, card.StageID)
	next := cur + offset
	if next < 0 || next >= len(stages) {
		return
	}
	if stages[next].ID == domain.StageUnassigned {
		return // the fallback bucket is not a drop target
	}
	m.coord.Hover(board.ColumnTarget(stages[next].ID))
	m.followGrabbed()
}

// hoverCardOffset hovers one slot up or down within the current stage.
func (m *Model) hoverCardOffset(offset int) {
	id := m.coord.DraggingCard()
	card, ok := m.snap.Find(id)
	if !ok {
		return
	}
	cards := m.snap.CardsInStage(card.StageID)
	pos := -1
	for i, c := range cards {
		if c.ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return
	}

	switch {
	case offset < 0 && pos > 0:
		m.coord.Hover(board.CardTarget(cards[pos-1].ID))
	case offset > 0 && pos < len(cards)-1:
		if pos+2 < len(cards) {
			m.coord.Hover(board.CardTarget(cards[pos+2].ID))
		} else {
			m.coord.Hover(board.ColumnTarget(card.StageID))
		}
	}
	m.followGrabbed()
}

// followGrabbed moves the cursor to the grabbed card's new position.
func (m *Model) followGrabbed() {
	card, ok := m.snap.Find(m.coord.DraggingCard())
	if !ok {
		return
	}
	if i := domain.StageIndex(m.visibleStages(), card.StageID); i >= 0 {
		m.colCursor = i
	}
	if i := m.snap.StageIndexOf(card.ID); i >= 0 {
		m.cardCursor = i
	}
}

// dropGrabbed completes the drag and, for cross-stage moves, issues
// the reconciliation request.
func (m *Model) dropGrabbed() (tea.Model, tea.Cmd) {
	mv, ok := m.coord.Drop()
	m.clampCursor()
	if !ok {
		m.setStatus("cancelled")
		m.adoptStaleIfSettled()
		return m, nil
	}

	if mv.StageID == mv.FromStage {
		// Reordering within a stage is display-only; the server
		// persists stage membership only, so no request is issued.
		m.setStatus("reordered")
		m.adoptStaleIfSettled()
		return m, nil
	}

	if err := m.recon.Track(*mv); err != nil {
		m.setError(err.Error())
		return m, nil
	}
	m.setStatus(fmt.Sprintf("moving %s...", mv.CardID))
	return m, m.moveCmd(*mv)
}

// handleMouse drives the gesture recognizer and drag coordinator from
// pointer events.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	lay := m.layout()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		card, ok := lay.cardAt(m.snap, msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		if m.recon.Pending(card.ID) {
			m.setError(fmt.Sprintf("%s has a move in flight, wait for it to settle", card.Name))
			return m, nil
		}
		m.mouse.Press(card.ID, msg.X, msg.Y)
		return m, nil

	case tea.MouseActionMotion:
		if m.mouse.Move(msg.X, msg.Y) {
			// Activation threshold crossed: the press becomes a drag.
			if err := m.coord.Begin(m.mouse.Card()); err != nil {
				m.mouse.Reset()
				return m, nil
			}
		}
		if m.mouse.Dragging() && m.coord.Dragging() {
			m.coord.Hover(lay.target(m.snap, msg.X, msg.Y))
			m.followGrabbed()
		}
		return m, nil

	case tea.MouseActionRelease:
		out := m.mouse.Release()
		switch out.Kind {
		case board.OutcomeClick:
			// Below the threshold: a true click, never a move.
			if card, ok := m.snap.Find(out.CardID); ok {
				m.detail = &card
			}
			return m, nil
		case board.OutcomeDrop:
			return m.dropGrabbed()
		case board.OutcomeNone:
			return m, nil
		}
	}

	return m, nil
}

// setStatus shows a non-error status message.
func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

// setError shows a non-blocking error notification.
func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
	m.logger.Warn("tui", s)
}
