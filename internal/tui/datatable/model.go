package datatable

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DisplayState is the mutually exclusive mode the table renders in.
type DisplayState int

const (
	StateLoading DisplayState = iota
	StateEmpty
	StateReady
)

func (s DisplayState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateEmpty:
		return "empty"
	default:
		return "ready"
	}
}

// Props configures a table. Props are supplied by the caller on every render pass;
// replacing them never resets sort or selection state.
type Props[T Identifiable] struct {
	Data          []T
	Columns       []Column[T]
	Loading       bool
	SelectionMode SelectionMode

	// OnSelectionChange is called synchronously after every toggle with the new
	// selection, including when it becomes empty.
	OnSelectionChange func(selected []T)
}

// Model is a sortable, selectable table.
type Model[T Identifiable] struct {
	KeyMap KeyMap
	Styles Styles

	props Props[T]

	sort     *SortConfig
	selected []T
	rows     []T // Display order derived from props.Data and sort

	cursor   int // Row index into rows
	focusCol int // Column index for keyboard sorting
	width    int
	maxCell  int
}

// Option configures optional model behavior.
type Option[T Identifiable] func(*Model[T])

// WithStyles sets the table styles.
func WithStyles[T Identifiable](s Styles) Option[T] {
	return func(m *Model[T]) {
		m.Styles = s
	}
}

// WithWidth sets the rendered table width. Zero lets the table size itself.
func WithWidth[T Identifiable](w int) Option[T] {
	return func(m *Model[T]) {
		m.width = w
	}
}

// WithMaxCellWidth truncates cell text longer than n cells.
func WithMaxCellWidth[T Identifiable](n int) Option[T] {
	return func(m *Model[T]) {
		m.maxCell = n
	}
}

// New creates a table with empty sort and selection state.
func New[T Identifiable](props Props[T], opts ...Option[T]) Model[T] {
	m := Model[T]{
		KeyMap:  DefaultKeyMap(),
		Styles:  NewStyles(nil),
		props:   props,
		maxCell: defaultMaxCellWidth,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.derive()
	return m
}

// Props returns the current props.
func (m Model[T]) Props() Props[T] {
	return m.props
}

// SetProps replaces the props. Sort and selection state are kept.
func (m *Model[T]) SetProps(props Props[T]) {
	m.props = props
	m.derive()
}

// SetWidth sets the rendered table width.
func (m *Model[T]) SetWidth(w int) {
	m.width = w
}

// State returns the current display state.
func (m Model[T]) State() DisplayState {
	switch {
	case m.props.Loading:
		return StateLoading
	case len(m.props.Data) == 0:
		return StateEmpty
	default:
		return StateReady
	}
}

// Rows returns the rows in display order.
func (m Model[T]) Rows() []T {
	return slices.Clone(m.rows)
}

// Sort returns the active sort, if any.
func (m Model[T]) Sort() (SortConfig, bool) {
	if m.sort == nil {
		return SortConfig{}, false
	}
	return *m.sort, true
}

// Selection returns the selected rows in selection order.
func (m Model[T]) Selection() []T {
	return slices.Clone(m.selected)
}

// IsSelected reports whether the row with id is selected.
func (m Model[T]) IsSelected(id ID) bool {
	return indexOf(m.selected, id) >= 0
}

// Cursor returns the display index of the highlighted row.
func (m Model[T]) Cursor() int {
	return m.cursor
}

// FocusedColumn returns the column index focused for keyboard sorting.
func (m Model[T]) FocusedColumn() int {
	return m.focusCol
}

// SortBy handles a header click on the column at index. It reports whether the sort
// changed; clicks on non-sortable columns are ignored.
func (m *Model[T]) SortBy(index int) bool {
	if m.State() != StateReady || index < 0 || index >= len(m.props.Columns) {
		return false
	}
	col := m.props.Columns[index]
	if !col.Sortable {
		return false
	}

	next := nextSort(m.sort, col.DataIndex)
	m.sort = &next
	m.derive()
	return true
}

// ClickHeader handles a header click on the column with the given key.
func (m *Model[T]) ClickHeader(columnKey string) bool {
	idx := slices.IndexFunc(m.props.Columns, func(c Column[T]) bool { return c.Key == columnKey })
	if idx < 0 {
		return false
	}
	return m.SortBy(idx)
}

// Toggle toggles the selection of the row with id. It reports whether the selection
// changed. Without a selection mode, or for an unknown id, nothing happens.
func (m *Model[T]) Toggle(id ID) bool {
	idx := indexOf(m.props.Data, id)
	if idx < 0 {
		return false
	}
	return m.ToggleRow(m.props.Data[idx])
}

// ToggleRow toggles the selection of row and notifies OnSelectionChange.
func (m *Model[T]) ToggleRow(row T) bool {
	if m.State() != StateReady || m.props.SelectionMode == SelectNone {
		return false
	}

	m.selected = toggleSelection(m.selected, row, m.props.SelectionMode)
	if m.props.OnSelectionChange != nil {
		m.props.OnSelectionChange(slices.Clone(m.selected))
	}
	return true
}

// Update handles key messages. Nothing is interactive while loading or empty.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.State() != StateReady {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.KeyMap.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.KeyMap.Left):
		if m.focusCol > 0 {
			m.focusCol--
		}
	case key.Matches(keyMsg, m.KeyMap.Right):
		if m.focusCol < len(m.props.Columns)-1 {
			m.focusCol++
		}
	case key.Matches(keyMsg, m.KeyMap.Sort):
		m.SortBy(m.focusCol)
	case key.Matches(keyMsg, m.KeyMap.Toggle):
		if m.cursor >= 0 && m.cursor < len(m.rows) {
			m.ToggleRow(m.rows[m.cursor])
		}
	default:
		if n, ok := digit(keyMsg); ok && n <= len(m.props.Columns) {
			m.focusCol = n - 1
			m.SortBy(n - 1)
		}
	}

	return m, nil
}

// derive recomputes the display order and clamps cursors.
func (m *Model[T]) derive() {
	m.rows = sortRows(m.props.Data, m.props.Columns, m.sort)
	m.cursor = clamp(m.cursor, 0, len(m.rows)-1)
	m.focusCol = clamp(m.focusCol, 0, len(m.props.Columns)-1)
}

// digit returns the value of a 1-9 key press.
func digit(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
