package datatable

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
)

// Placeholder texts for the non-tabular display states.
const (
	LoadingText = "Loading..."
	EmptyText   = "No data available"
)

const defaultMaxCellWidth = 40

// Selection column markers.
const (
	SelectHeader      = "Select"
	markSingleOff     = "( )"
	markSingleOn      = "(•)"
	markMultipleOff   = "[ ]"
	markMultipleOn    = "[x]"
	sortAscIndicator  = " ▲"
	sortDescIndicator = " ▼"
)

// View renders the table for its current display state.
func (m Model[T]) View() string {
	switch m.State() {
	case StateLoading:
		return m.Styles.Placeholder.Render(LoadingText)
	case StateEmpty:
		return m.Styles.Placeholder.Render(EmptyText)
	}

	headers, headerStyles := m.headerCells()
	rows := m.bodyCells()
	selectable := m.props.SelectionMode != SelectNone

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		Border(lipgloss.RoundedBorder()).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		BorderStyle(m.Styles.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if col >= 0 && col < len(headerStyles) {
					return headerStyles[col]
				}
				return m.Styles.Header
			}
			if row == m.cursor {
				return m.Styles.Cursor
			}
			if selectable && row >= 0 && row < len(m.rows) && m.IsSelected(m.rows[row].RowID()) {
				return m.Styles.Selected
			}
			return m.Styles.Cell
		})
	if m.width > 0 {
		t = t.Width(m.width)
	}

	return t.Render()
}

// headerCells returns header titles with sort indicators and their styles.
func (m Model[T]) headerCells() ([]string, []lipgloss.Style) {
	n := len(m.props.Columns)
	offset := 0
	if m.props.SelectionMode != SelectNone {
		offset = 1
	}

	headers := make([]string, 0, n+offset)
	styles := make([]lipgloss.Style, 0, n+offset)
	if offset == 1 {
		headers = append(headers, SelectHeader)
		styles = append(styles, m.Styles.Header)
	}

	for i, col := range m.props.Columns {
		title := col.Title
		if m.sort != nil && col.Sortable && m.sort.Key == col.DataIndex {
			if m.sort.Direction == Ascending {
				title += sortAscIndicator
			} else {
				title += sortDescIndicator
			}
		}
		headers = append(headers, title)

		switch {
		case i == m.focusCol && col.Sortable:
			styles = append(styles, m.Styles.HeaderFocused)
		case col.Sortable:
			styles = append(styles, m.Styles.HeaderSortable)
		default:
			styles = append(styles, m.Styles.Header)
		}
	}
	return headers, styles
}

// bodyCells returns the text of each displayed row.
func (m Model[T]) bodyCells() [][]string {
	out := make([][]string, 0, len(m.rows))
	for _, row := range m.rows {
		cells := make([]string, 0, len(m.props.Columns)+1)
		if mark := m.selectionMark(row); mark != "" {
			cells = append(cells, mark)
		}
		for _, col := range m.props.Columns {
			text := col.text(row)
			if m.maxCell > 0 {
				text = ansi.Truncate(text, m.maxCell, "…")
			}
			cells = append(cells, text)
		}
		out = append(out, cells)
	}
	return out
}

func (m Model[T]) selectionMark(row T) string {
	selected := m.IsSelected(row.RowID())
	switch m.props.SelectionMode {
	case SelectSingle:
		if selected {
			return markSingleOn
		}
		return markSingleOff
	case SelectMultiple:
		if selected {
			return markMultipleOn
		}
		return markMultipleOff
	default:
		return ""
	}
}
