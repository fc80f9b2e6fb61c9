package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pipeboard/pipeboard/internal/board"
	"github.com/pipeboard/pipeboard/internal/domain"
	"github.com/pipeboard/pipeboard/internal/testutil"
	"github.com/pipeboard/pipeboard/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestModel builds a model over the mock service with the board
// already loaded. The terminal is 120x40, giving three 38-cell columns.
func newTestModel(t *testing.T) (*Model, *testutil.MockOpportunityService) {
	t.Helper()

	svc := testutil.NewMockOpportunityService()
	logger := testutil.NopLogger{}
	cfg := domain.NewDefaultConfig()
	m := New(
		usecase.NewLoadBoard(svc, logger),
		usecase.NewMoveOpportunity(svc, logger),
		logger,
		cfg,
	)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	msg := m.load()()
	loaded, ok := msg.(MsgBoardLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	m.Update(loaded)
	return m, svc
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func stageOf(t *testing.T, m *Model, id string) string {
	t.Helper()
	card, ok := m.snap.Find(id)
	require.True(t, ok)
	return card.StageID
}

func TestModel_AdoptsBoardWhenSettled(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Len(t, m.stages, 3)
	assert.Equal(t, 2, m.snap.Len())
	assert.Equal(t, "new", stageOf(t, m, "A"))
	assert.Equal(t, "proposal", stageOf(t, m, "B"))
}

func TestModel_GrabHoverDrop(t *testing.T) {
	m, svc := newTestModel(t)

	// Cursor starts on card A in the first column.
	m.Update(keyPress(tea.KeySpace))
	require.True(t, m.coord.Dragging())
	assert.Equal(t, "A", m.coord.DraggingCard())

	// Hovering the next column reflows A into it immediately.
	m.Update(keyPress(tea.KeyRight))
	assert.Equal(t, "proposal", stageOf(t, m, "A"))
	assert.Empty(t, svc.MoveCalls, "no request until drop")

	_, cmd := m.Update(keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.False(t, m.coord.Dragging())
	assert.True(t, m.recon.Pending("A"))

	settled, ok := cmd().(MsgMoveSettled)
	require.True(t, ok)
	require.NoError(t, settled.Err)
	require.Len(t, svc.MoveCalls, 1)
	assert.Equal(t, testutil.MoveCall{ID: "A", StageID: "proposal"}, svc.MoveCalls[0])

	m.Update(settled)
	assert.False(t, m.recon.HasPending())
	assert.Equal(t, "proposal", stageOf(t, m, "A"))
}

func TestModel_CancelRestoresPreDragState(t *testing.T) {
	m, svc := newTestModel(t)

	m.Update(keyPress(tea.KeySpace))
	m.Update(keyPress(tea.KeyRight))
	require.Equal(t, "proposal", stageOf(t, m, "A"))

	m.Update(keyPress(tea.KeyEsc))
	assert.False(t, m.coord.Dragging())
	assert.Equal(t, "new", stageOf(t, m, "A"))
	assert.Empty(t, svc.MoveCalls)
}

func TestModel_MoveFailureRollsBack(t *testing.T) {
	m, svc := newTestModel(t)
	svc.MoveErr = errors.New("boom")

	m.Update(keyPress(tea.KeySpace))
	m.Update(keyPress(tea.KeyRight))
	_, cmd := m.Update(keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)

	settled, ok := cmd().(MsgMoveSettled)
	require.True(t, ok)
	require.Error(t, settled.Err)

	m.Update(settled)
	assert.False(t, m.recon.HasPending())
	assert.Equal(t, "new", stageOf(t, m, "A"), "failed move snaps the card back")
	assert.True(t, m.statusErr)
}

func TestModel_SameStageDropIssuesNoRequest(t *testing.T) {
	m, svc := newTestModel(t)

	m.Update(keyPress(tea.KeySpace))
	m.coord.Hover(board.ColumnTarget("new"))

	_, cmd := m.Update(keyPress(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.False(t, m.recon.HasPending())
	assert.Empty(t, svc.MoveCalls)
}

func TestModel_StaleLoadStashedUntilSettled(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(keyPress(tea.KeySpace))
	m.Update(keyPress(tea.KeyRight))

	// A refetch lands mid-drag; it must not clobber the speculative state.
	stale := MsgBoardLoaded{
		Stages: m.stages,
		Opportunities: []domain.Opportunity{
			{ID: "A", Name: "Deal A", StageID: "won", Value: 1000},
			{ID: "B", Name: "Deal B", StageID: "proposal", Value: 500},
		},
	}
	m.Update(stale)
	assert.Equal(t, "proposal", stageOf(t, m, "A"), "speculative placement survives")
	require.NotNil(t, m.staleBoard)

	// Cancelling settles the board and adopts the stashed list.
	m.Update(keyPress(tea.KeyEsc))
	assert.Nil(t, m.staleBoard)
	assert.Equal(t, "won", stageOf(t, m, "A"))
}

func TestModel_PendingCardCannotBeGrabbed(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(keyPress(tea.KeySpace))
	m.Update(keyPress(tea.KeyRight))
	_, cmd := m.Update(keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)
	require.True(t, m.recon.Pending("A"))

	// The cursor followed A into the proposal column; re-grabbing it
	// must be refused while its move is in flight.
	m.Update(keyPress(tea.KeySpace))
	assert.False(t, m.coord.Dragging())
	assert.True(t, m.statusErr)
}

func TestModel_SuccessfulSettleTriggersRefetch(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(keyPress(tea.KeySpace))
	m.Update(keyPress(tea.KeyRight))
	_, cmd := m.Update(keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)
	settled := cmd().(MsgMoveSettled)

	_, refetch := m.Update(settled)
	assert.NotNil(t, refetch, "server truth is refetched after a settle")
}

func TestModel_MouseClickOpensDetail(t *testing.T) {
	m, _ := newTestModel(t)

	// Card A occupies column 0, rows 4-5.
	m.Update(tea.MouseMsg{X: 2, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion})
	m.Update(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	require.NotNil(t, m.detail, "sub-threshold release is a click")
	assert.Equal(t, "A", m.detail.ID)
	assert.False(t, m.coord.Dragging())
}

func TestModel_MouseDragMovesCard(t *testing.T) {
	m, svc := newTestModel(t)

	// With width 120 and three stages, column 1 starts at x=40.
	m.Update(tea.MouseMsg{X: 2, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 45, Y: 4, Action: tea.MouseActionMotion})
	require.True(t, m.coord.Dragging())
	assert.Equal(t, "proposal", stageOf(t, m, "A"))

	_, cmd := m.Update(tea.MouseMsg{X: 45, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	assert.Nil(t, m.detail)

	settled := cmd().(MsgMoveSettled)
	require.NoError(t, settled.Err)
	require.Len(t, svc.MoveCalls, 1)
	assert.Equal(t, "proposal", svc.MoveCalls[0].StageID)
}

func TestModel_TickSkipsRefreshWhileUnsettled(t *testing.T) {
	m, _ := newTestModel(t)
	m.refreshEvery = time.Second

	m.Update(keyPress(tea.KeySpace))
	m.Update(MsgTick{})
	assert.False(t, m.loading, "no refetch while a drag is active")

	m.Update(keyPress(tea.KeyEsc))
	m.Update(MsgTick{})
	assert.True(t, m.loading)
}

func TestModel_UnassignedFallbackColumn(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(MsgBoardLoaded{
		Stages: m.stages,
		Opportunities: []domain.Opportunity{
			{ID: "A", Name: "Deal A", StageID: "new", Value: 1000},
			{ID: "X", Name: "Orphan", StageID: "deleted-stage", Value: 100},
		},
	})

	stages := m.visibleStages()
	require.Len(t, stages, 4)
	assert.Equal(t, domain.StageUnassigned, stages[3].ID)

	lay := m.layout()
	cards := lay.cardsFor(m.snap, stages[3])
	require.Len(t, cards, 1)
	assert.Equal(t, "X", cards[0].ID)
}

func TestModel_SettleAppliesServerNormalization(t *testing.T) {
	m, _ := newTestModel(t)

	// Move A into the proposal column and leave its settle in flight.
	m.Update(keyPress(tea.KeySpace))
	m.Update(keyPress(tea.KeyRight))
	_, cmd := m.Update(keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)

	// Grab B so the board is unsettled when A's settle arrives.
	m.Update(keyPress(tea.KeyUp))
	m.Update(keyPress(tea.KeySpace))
	require.Equal(t, "B", m.coord.DraggingCard())

	normalized := domain.Opportunity{ID: "A", Name: "Deal A", StageID: "proposal", Value: 1000, Probability: 100}
	_, refetch := m.Update(MsgMoveSettled{CardID: "A", Moved: &normalized})
	assert.Nil(t, refetch, "no refetch while another drag is active")

	// The server's clamped probability shows up without a refetch.
	card, ok := m.snap.Find("A")
	require.True(t, ok)
	assert.Equal(t, 100, card.Probability)
	assert.False(t, m.recon.HasPending())
}
