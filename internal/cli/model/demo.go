package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
)

const clockInterval = 500 * time.Millisecond

// Autosaver receives layout captures and flushes them on shutdown.
type Autosaver interface {
	MarkDirty(doc *entity.LayoutDocument)
	Stop(ctx context.Context) error
}

// DemoConfig holds the dependencies of the demo host.
type DemoConfig struct {
	Engine  *dock.Engine
	Layout  *usecase.ManageLayoutUseCase
	Restore *usecase.RestoreLayoutUseCase
	// Autosave is optional.
	Autosave Autosaver
	// Defaults is the block order of the default layout.
	Defaults []entity.BlockID
	// Catalog is the block order bound to the digit keys.
	Catalog []entity.BlockID
}

// DemoModel hosts a dock engine in the terminal. Each cell is one layout
// unit; the last row is the status bar.
type DemoModel struct {
	help help.Model
	keys demoKeyMap

	width   int
	height  int
	canvas  *Canvas
	pointer entity.Point
	held    bool
	status  string
	err     error
	commits int

	ctx      context.Context
	engine   *dock.Engine
	layoutUC *usecase.ManageLayoutUseCase
	restore  *usecase.RestoreLayoutUseCase
	autosave Autosaver
	defaults []entity.BlockID
	catalog  []entity.BlockID
	theme    *styles.Theme
}

type clockTickMsg time.Time

// SettingsMsg replaces the engine settings, typically after a config reload.
type SettingsMsg dock.Settings

// NewDemoModel creates the demo and registers its content renderers.
func NewDemoModel(ctx context.Context, theme *styles.Theme, cfg DemoConfig) *DemoModel {
	m := &DemoModel{
		help:     help.New(),
		keys:     defaultDemoKeyMap(),
		canvas:   NewCanvas(0, 0),
		ctx:      logging.WithComponent(ctx, "demo"),
		engine:   cfg.Engine,
		layoutUC: cfg.Layout,
		restore:  cfg.Restore,
		autosave: cfg.Autosave,
		defaults: cfg.Defaults,
		catalog:  cfg.Catalog,
		theme:    theme,
	}
	m.help.Styles.ShortKey = theme.HelpKey
	m.help.Styles.ShortDesc = theme.HelpDesc
	m.help.Styles.FullKey = theme.HelpKey
	m.help.Styles.FullDesc = theme.HelpDesc

	m.engine.RegisterContent(KindNotes, newNotesRenderer(m.canvas))
	m.engine.RegisterContent(KindClock, newClockRenderer(m.canvas))
	m.engine.RegisterContent(KindStats, newStatsRenderer(m.canvas, m.engine))
	m.engine.SetOnCommit(func(doc *entity.LayoutDocument) {
		m.commits++
		if m.autosave != nil {
			m.autosave.MarkDirty(doc)
		}
	})
	return m
}

// Canvas exposes the frame buffer.
func (m *DemoModel) Canvas() *Canvas { return m.canvas }

// Status returns the current status line message.
func (m *DemoModel) Status() string { return m.status }

// Err returns the last error shown.
func (m *DemoModel) Err() error { return m.err }

func clockTick() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// Init implements tea.Model.
func (m *DemoModel) Init() tea.Cmd {
	return clockTick()
}

// Update implements tea.Model.
func (m *DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.MouseMsg:
		m.tick(m.mouseInput(msg))
		return m, nil

	case SettingsMsg:
		m.engine.SetSettings(dock.Settings(msg))
		m.status = "settings reloaded"
		m.resize()
		return m, nil

	case clockTickMsg:
		m.tick(entity.InputSnapshot{Pointer: m.pointer, Held: m.held})
		return m, clockTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *DemoModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.tick(entity.InputSnapshot{Pointer: m.pointer, Keys: []entity.Key{entity.KeyEscape}})
		m.held = false

	case key.Matches(msg, m.keys.Save):
		doc, err := m.layoutUC.Save(m.ctx, m.engine.Dock())
		msg := ""
		if err == nil {
			msg = fmt.Sprintf("saved %d panels", len(doc.Panels))
		}
		m.report(err, msg)

	case key.Matches(msg, m.keys.Reset):
		err := m.restore.BuildDefault(m.ctx, m.engine.Dock(), m.defaults)
		if err == nil {
			m.engine.Commit(m.ctx)
		}
		m.report(err, "default layout")
		m.redraw()

	case key.Matches(msg, m.keys.Toggle):
		m.toggle(msg.String())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	}
	return m, nil
}

func (m *DemoModel) toggle(digit string) {
	i := int(digit[0] - '1')
	if i < 0 || i >= len(m.catalog) {
		return
	}
	id := m.catalog[i]
	err := m.engine.Toggle(m.ctx, id)
	state := "closed"
	if m.engine.Dock().PanelOf(id) != nil {
		state = "opened"
	}
	m.report(err, fmt.Sprintf("%s %s", state, id))
	m.redraw()
}

func (m *DemoModel) report(err error, ok string) {
	m.err = err
	if err != nil {
		m.status = err.Error()
		logging.FromContext(m.ctx).Warn().Err(err).Msg("demo action failed")
		return
	}
	m.status = ok
}

func (m *DemoModel) shutdown() {
	if m.autosave == nil {
		return
	}
	if err := m.autosave.Stop(m.ctx); err != nil {
		logging.FromContext(m.ctx).Error().Err(err).Msg("final layout save failed")
	}
}

// mouseInput turns a terminal mouse event into an input snapshot. Only the
// left button drives the dock.
func (m *DemoModel) mouseInput(msg tea.MouseMsg) entity.InputSnapshot {
	m.pointer = entity.Point{X: msg.X, Y: msg.Y}
	in := entity.InputSnapshot{Pointer: m.pointer}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			in.Pressed = !m.held
			m.held = true
		}
	case tea.MouseActionRelease:
		in.Released = m.held
		m.held = false
	}
	in.Held = m.held
	return in
}

// statusHeight is one row, or two while the full help is shown.
func (m *DemoModel) statusHeight() int {
	if m.help.ShowAll {
		return 2
	}
	return 1
}

func (m *DemoModel) resize() {
	m.canvas.Resize(m.width, max(m.height-m.statusHeight(), 0))
	m.redraw()
}

func (m *DemoModel) viewport() entity.Rect {
	return m.canvas.Bounds()
}

func (m *DemoModel) tick(in entity.InputSnapshot) {
	m.canvas.Clear()
	m.engine.Tick(m.ctx, in, m.viewport())
	m.paintChrome()
}

// redraw repaints after a direct edit without feeding input.
func (m *DemoModel) redraw() {
	m.tick(entity.InputSnapshot{Pointer: m.pointer, Held: m.held})
}

func (m *DemoModel) paintChrome() {
	for _, e := range m.engine.Edges() {
		m.paintDivider(e.Orientation, e.Coord-1, e.Start, e.End)
	}
	for _, c := range m.engine.Chrome() {
		m.paintHeader(c)
	}
	m.paintPreview(m.engine.Preview())
}

func (m *DemoModel) paintDivider(o entity.Orientation, at, start, end int) {
	for i := start; i < end; i++ {
		x, y, glyph := at, i, []rune(styles.GlyphVDivider)[0]
		if o == entity.OrientationHorizontal {
			x, y, glyph = i, at, []rune(styles.GlyphHDivider)[0]
		}
		m.canvas.Set(x, y, glyph, styles.CellDivider)
	}
}

func (m *DemoModel) paintHeader(c dock.PanelChrome) {
	headerStyle := styles.CellHeader
	if c.Locked {
		headerStyle = styles.CellHeaderLocked
	}
	m.canvas.Fill(c.Header, ' ', headerStyle)

	for _, t := range c.Tabs {
		tabStyle := styles.CellTabInactive
		switch {
		case t.Active:
			tabStyle = styles.CellTabActive
		case t.Locked:
			tabStyle = styles.CellTabLocked
		}
		m.canvas.Fill(t.Rect, ' ', tabStyle)

		titleClip := t.Rect
		for _, b := range []entity.Rect{t.Ungroup, t.Lock, t.Close} {
			if !b.Empty() {
				titleClip.W = min(titleClip.W, b.X-t.Rect.X)
			}
		}
		title := t.Title
		if t.Locked {
			title = styles.GlyphLock + title
		}
		m.canvas.Text(titleClip, t.Rect.X+1, t.Rect.Y, title, tabStyle)

		m.paintButton(t.Close, styles.GlyphClose)
		if t.Locked {
			m.paintButton(t.Lock, styles.GlyphLock)
		} else {
			m.paintButton(t.Lock, styles.GlyphUnlock)
		}
		m.paintButton(t.Ungroup, styles.GlyphUngroup)
	}

	if c.Locked {
		m.paintButton(c.LockButton, styles.GlyphPanelLock)
	} else {
		m.paintButton(c.LockButton, styles.GlyphPanelOpen)
	}
}

func (m *DemoModel) paintButton(r entity.Rect, glyph string) {
	if r.Empty() {
		return
	}
	m.canvas.Fill(r, ' ', styles.CellButton)
	m.canvas.Text(r, r.X, r.Y, glyph, styles.CellButton)
}

func (m *DemoModel) paintPreview(p dock.Preview) {
	switch p.Kind {
	case dock.PreviewQuadrant, dock.PreviewViewport:
		m.canvas.Restyle(p.Rect, styles.CellPreview)
	case dock.PreviewTabInsert:
		x := min(p.Line.X, p.Rect.Right()-1)
		for y := p.Line.Y; y < p.Line.Bottom(); y++ {
			m.canvas.Set(x, y, []rune(styles.GlyphInsertLine)[0], styles.CellPreviewLine)
		}
	}
}

// View implements tea.Model.
func (m *DemoModel) View() string {
	if m.width == 0 {
		return "starting dockyard..."
	}
	return m.canvas.Render(m.theme) + "\n" + m.statusBar()
}

func (m *DemoModel) statusBar() string {
	if m.help.ShowAll {
		return m.help.View(m.keys)
	}

	left := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.status != "" {
		style := m.theme.Subtle
		if m.err != nil {
			style = m.theme.ErrorStyle
		}
		left = style.Render(m.status) + "  " + left
	}

	right := m.theme.Subtle.Render(fmt.Sprintf("%s · %d panels · %d edits",
		m.engine.Interaction(), len(m.engine.Dock().ReachablePanels()), m.commits))
	if diags := m.engine.Diagnostics(); len(diags) > 0 {
		right = m.theme.WarningStyle.Render(fmt.Sprintf("%s %d issues", styles.IconWarning, len(diags))) + " " + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}
