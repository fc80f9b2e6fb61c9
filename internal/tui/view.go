package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/pipeboard/pipeboard/internal/domain"
)

// View renders the board.
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.detail != nil {
		return m.viewDetail()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(m.viewColumns())
	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m *Model) viewHeader() string {
	title := m.styles.Header.Render("Pipeline")
	if m.loading {
		return title + " " + m.styles.Loading.Render("refreshing...")
	}
	return title
}

// viewColumns renders the stage columns side by side. Rows line up with
// the geometry constants so the mouse hit test agrees with the render.
func (m *Model) viewColumns() string {
	lay := m.layout()
	if len(lay.stages) == 0 {
		return m.styles.Empty.Render("no stages")
	}

	cols := make([]string, 0, len(lay.stages)*2-1)
	gap := strings.Repeat(" ", columnGap)
	for i, stage := range lay.stages {
		if i > 0 {
			cols = append(cols, gap)
		}
		cols = append(cols, m.viewColumn(lay, i, stage))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m *Model) viewColumn(lay layout, col int, stage domain.Stage) string {
	w := lay.colWidth
	cards := lay.cardsFor(m.snap, stage)

	titleStyle := m.styles.ColumnTitle.Foreground(CategoryColor(stage.Category))
	if col == m.colCursor {
		titleStyle = titleStyle.Underline(true)
	}
	title := fmt.Sprintf("%s (%d)", stage.Title, len(cards))
	lines := []string{
		titleStyle.Render(pad(title, w)),
		m.styles.ColumnTotals.Render(pad(m.columnTotals(stage, cards), w)),
	}

	if len(cards) == 0 {
		lines = append(lines, m.styles.Empty.Render(pad("  (empty)", w)), pad("", w))
	}
	for slot, card := range cards {
		lines = append(lines, m.viewCard(card, w, col == m.colCursor && slot == m.cardCursor)...)
	}

	return strings.Join(lines, "\n")
}

// columnTotals renders the per-stage aggregates. They are computed from
// the visible snapshot, so a drag in progress reflows totals live.
func (m *Model) columnTotals(stage domain.Stage, cards []domain.Opportunity) string {
	var total, weighted float64
	for _, c := range cards {
		total += c.Value
		weighted += c.WeightedValue()
	}
	if stage.ID == domain.StageUnassigned || m.hideWeighted {
		return domain.FormatValue(total)
	}
	return fmt.Sprintf("%s / %s wtd", domain.FormatValue(total), domain.FormatValue(weighted))
}

// viewCard renders one card block of cardRows lines.
func (m *Model) viewCard(card domain.Opportunity, w int, selected bool) []string {
	style := m.styles.Card
	marker := "  "
	switch {
	case m.coord.DraggingCard() == card.ID:
		style = m.styles.CardGrabbed
		marker = "◆ "
	case m.recon.Pending(card.ID):
		style = m.styles.CardPending
		marker = "… "
	case selected:
		style = m.styles.CardSelected
		marker = "> "
	}

	meta := domain.FormatValue(card.Value)
	if card.Probability > 0 {
		meta += fmt.Sprintf(" · %d%%", card.Probability)
	}
	if card.Company != "" {
		meta += " · " + card.Company
	}

	return []string{
		style.Render(pad(marker+card.Name, w)),
		m.styles.CardMeta.Render(pad("  "+meta, w)),
	}
}

func (m *Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.Error.Render(m.status)
	}
	return m.styles.Status.Render(m.status)
}

func (m *Model) viewFooter() string {
	type hint struct{ key, desc string }
	var hints []hint
	if m.coord.Dragging() {
		hints = []hint{
			{"←→↑↓", "place"},
			{"enter", "drop"},
			{"esc", "cancel"},
		}
	} else {
		hints = []hint{
			{"←→↑↓", "navigate"},
			{"space", "grab"},
			{"enter", "open"},
			{"r", "refresh"},
			{"q", "quit"},
		}
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, m.styles.FooterKey.Render(h.key)+" "+m.styles.Footer.Render(h.desc))
	}
	return strings.Join(parts, m.styles.Footer.Render(" · "))
}

func (m *Model) viewDetail() string {
	card := *m.detail

	stageTitle := card.StageID
	for _, s := range m.stages {
		if s.ID == card.StageID {
			stageTitle = s.Title
			break
		}
	}

	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render(card.Name))
	b.WriteString("\n\n")
	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(m.styles.DialogMuted.Render(fmt.Sprintf("%-12s", label)))
		b.WriteString(m.styles.DialogText.Render(value))
		b.WriteString("\n")
	}
	row("Stage", stageTitle)
	row("Value", domain.FormatValue(card.Value))
	if card.Probability > 0 {
		row("Probability", fmt.Sprintf("%d%%", card.Probability))
		row("Weighted", domain.FormatValue(card.WeightedValue()))
	}
	row("Company", card.Company)
	row("Contact", card.Contact)
	if card.HasCloseDate() {
		row("Close date", card.CloseDate.Format("2006-01-02"))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.DialogMuted.Render("press any key to close"))

	dialog := m.styles.Dialog.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}

// pad truncates s to width and right-pads with spaces so every row in a
// column occupies exactly the column width.
func pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = truncate.StringWithTail(s, uint(width), "…")
	if n := width - lipgloss.Width(s); n > 0 {
		s += strings.Repeat(" ", n)
	}
	return s
}
