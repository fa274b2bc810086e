package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brandsmith/moodgrid/pkg/board"
	"github.com/brandsmith/moodgrid/pkg/layout"
)

// pxPerColumn converts terminal columns to viewport pixels so the same
// breakpoint classifier drives the TUI and the browser client. A 96-col
// terminal reads as 768px and flips the board to the tablet tier.
const pxPerColumn = 8.0

// Tile type backgrounds for the board canvas.
var tileBackgrounds = map[string]lipgloss.Color{
	"image":      lipgloss.Color("67"),
	"logo":       lipgloss.Color("139"),
	"palette":    lipgloss.Color("173"),
	"typography": lipgloss.Color("101"),
	"texture":    lipgloss.Color("65"),
	"statement":  lipgloss.Color("96"),
}

var (
	tileDefaultBg = lipgloss.Color("242")
	tileEmptyBg   = lipgloss.Color("236")

	boardLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	boardEmptyStyle  = lipgloss.NewStyle().Foreground(colorDim)
	boardHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	boardStatusStyle = lipgloss.NewStyle().Foreground(colorGreen)
)

// =============================================================================
// BoardModel - Interactive board editor
// =============================================================================

// BoardModel is the bubbletea model for the board editor. The cursor
// walks placements in composer order; enter picks a tile up, moving the
// cursor hovers it over a target, enter again drops it (a swap), and
// esc cancels the drag leaving the board untouched.
type BoardModel struct {
	editor *board.Editor

	cursor int
	width  int
	height int
	status string
}

// NewBoardModel creates a board editor model around an editor.
func NewBoardModel(ed *board.Editor) BoardModel {
	return BoardModel{editor: ed, width: 80, height: 24}
}

// Editor exposes the underlying editor so the command can persist its
// state after the program exits.
func (m BoardModel) Editor() *board.Editor {
	return m.editor
}

func (m BoardModel) Init() tea.Cmd {
	return nil
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		tier := m.editor.SetViewport(float64(msg.Width) * pxPerColumn)
		m.clampCursor()
		m.status = fmt.Sprintf("viewport %s", tier)
		m.hoverCursor()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "left", "h", "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.hoverCursor()

		case "right", "l", "down", "j":
			if m.cursor < len(m.ids())-1 {
				m.cursor++
			}
			m.hoverCursor()

		case "enter", " ":
			m = m.pickOrDrop()

		case "esc":
			if _, dragging := m.editor.DragSource(); dragging {
				m.editor.DragCancel()
				m.status = "cancelled"
			}

		case "tab":
			m = m.nextPreset()
		}
	}
	return m, nil
}

// pickOrDrop drives the drag state machine from the enter key.
func (m BoardModel) pickOrDrop() BoardModel {
	ids := m.ids()
	if len(ids) == 0 {
		return m
	}
	current := ids[m.cursor]

	source, dragging := m.editor.DragSource()
	if !dragging {
		if m.editor.DragStart(current) {
			m.status = fmt.Sprintf("picked up %s", current)
		}
		return m
	}

	if _, hovering := m.editor.DragTarget(); hovering {
		if m.editor.DragDrop() {
			m.status = fmt.Sprintf("swapped %s and %s", source, current)
		} else {
			m.status = "swap not applied"
		}
		return m
	}

	// Dropping on the source (or nowhere) abandons the drag.
	m.editor.DragCancel()
	m.status = "cancelled"
	return m
}

// nextPreset cycles to the next preset in catalog order. Switching
// clears the swap ledger.
func (m BoardModel) nextPreset() BoardModel {
	names := m.editor.PresetNames()
	for i, name := range names {
		if name == m.editor.Preset() {
			next := names[(i+1)%len(names)]
			m.editor.SetPreset(next)
			m.cursor = 0
			m.status = fmt.Sprintf("preset %s", next)
			return m
		}
	}
	return m
}

// hoverCursor reports the placement under the cursor to the drag state
// machine. Hovering the source itself is ignored by the editor.
func (m *BoardModel) hoverCursor() {
	ids := m.ids()
	if len(ids) == 0 {
		return
	}
	if _, dragging := m.editor.DragSource(); !dragging {
		return
	}
	current := ids[m.cursor]
	if src, _ := m.editor.DragSource(); src == current {
		m.editor.DragHoverLeave()
		return
	}
	m.editor.DragHover(current)
}

func (m BoardModel) ids() []string {
	return m.editor.PlacementIDs()
}

func (m *BoardModel) clampCursor() {
	if n := len(m.ids()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
}

// =============================================================================
// View
// =============================================================================

func (m BoardModel) View() string {
	var b strings.Builder

	swaps := len(m.editor.Swaps())
	header := fmt.Sprintf("%s · %s", m.editor.Preset(), tierLabel(m.editor.Tier()))
	if swaps > 0 {
		header += fmt.Sprintf(" · %d swapped", swaps)
	}
	b.WriteString(StyleTitle.Render("moodgrid") + "  " + StyleDim.Render(header))
	b.WriteString("\n\n")

	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(boardStatusStyle.Render(m.status))
		b.WriteString("\n")
	}
	help := "←/→ move · ⏎ pick/drop · esc cancel · tab preset · q quit"
	if _, dragging := m.editor.DragSource(); dragging {
		help = "←/→ choose target · ⏎ drop · esc cancel"
	}
	b.WriteString(boardHelpStyle.Render(help))
	b.WriteString("\n")
	return b.String()
}

// renderGrid paints the composed board into a character canvas. Each
// placement becomes a filled block sized by its spans, labelled with
// the tile id (or the placement id when the slot is empty).
func (m BoardModel) renderGrid() string {
	geom := m.editor.Geometry()
	slots := m.editor.Compose()

	cellW := (m.width - 2) / geom.Columns
	if cellW < 8 {
		cellW = 8
	}
	cellH := (m.height - 7) / geom.Rows
	if cellH < 2 {
		cellH = 2
	}

	type cell struct {
		ch    string
		style lipgloss.Style
	}
	w, h := geom.Columns*cellW, geom.Rows*cellH
	canvas := make([][]cell, h)
	for y := range canvas {
		canvas[y] = make([]cell, w)
		for x := range canvas[y] {
			canvas[y][x] = cell{ch: " ", style: lipgloss.NewStyle()}
		}
	}

	source, _ := m.editor.DragSource()
	target, _ := m.editor.DragTarget()

	for i, slot := range slots {
		p := slot.Placement
		x0 := (p.ColStart - 1) * cellW
		y0 := (p.RowStart - 1) * cellH
		pw := p.ColSpan*cellW - 1
		ph := p.RowSpan*cellH - 1

		bg := m.slotColor(slot, i == m.cursor, p.ID == source, p.ID == target)
		st := lipgloss.NewStyle().Background(bg)
		for y := y0; y < y0+ph; y++ {
			for x := x0; x < x0+pw; x++ {
				canvas[y][x] = cell{ch: " ", style: st}
			}
		}

		label := slot.Label()
		if slot.Empty() {
			label = "(" + label + ")"
		}
		if p.ID == source {
			label = "* " + label
		}
		if len(label) > pw-2 {
			label = label[:pw-2]
		}
		labelStyle := boardLabelStyle.Background(bg)
		if slot.Empty() {
			labelStyle = boardEmptyStyle.Background(bg)
		}
		for j, r := range label {
			canvas[y0][x0+1+j] = cell{ch: string(r), style: labelStyle}
		}
	}

	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.WriteString(canvas[y][x].style.Render(canvas[y][x].ch))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m BoardModel) slotColor(slot board.RenderSlot, selected, isSource, isTarget bool) lipgloss.Color {
	switch {
	case isTarget:
		return colorCyan
	case isSource:
		return colorYellow
	case selected:
		return colorGreen
	case slot.Empty():
		return tileEmptyBg
	}
	if c, ok := tileBackgrounds[slot.Tile.Type]; ok {
		return c
	}
	return tileDefaultBg
}

// tierLabel formats a tier with its width range for the header.
func tierLabel(t layout.Tier) string {
	switch t {
	case layout.TierMobile:
		return fmt.Sprintf("mobile (<%dpx)", layout.TabletMinWidth)
	case layout.TierTablet:
		return fmt.Sprintf("tablet (%d-%dpx)", layout.TabletMinWidth, layout.DesktopMinWidth-1)
	default:
		return fmt.Sprintf("desktop (≥%dpx)", layout.DesktopMinWidth)
	}
}
