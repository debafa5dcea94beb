// Package tui provides a Bubble Tea terminal user interface for bulktag.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/bulktag/internal/batch"
	"github.com/handiism/bulktag/internal/config"
	"github.com/handiism/bulktag/internal/history"
	"github.com/handiism/bulktag/internal/model"
	"github.com/handiism/bulktag/internal/ops"
	"github.com/handiism/bulktag/internal/preset"
	"github.com/handiism/bulktag/internal/scan"
	"github.com/handiism/bulktag/internal/store"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateScanning
	StateBrowse
	StateApplying
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   batch.ProgressLevel
}

// visibleFiles is how many items the browse list shows at once.
const visibleFiles = 14

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings

	tagStore store.TagStore
	runner   *batch.Runner
	events   chan batch.ProgressEvent

	items    []*model.Item
	cursor   int
	logs     []LogEntry
	err      error
	previewT string

	presets   []preset.Preset
	presetIdx int // -1 = none selected

	// Apply progress
	applyTotal int
	applyDone  int

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/music/folder"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	events := make(chan batch.ProgressEvent, 64)
	st := store.NewID3Store(settings.BackupOriginals)
	hist := history.NewManager(settings.MaxHistory)
	runner := batch.NewRunner(st, hist, func(ev batch.ProgressEvent) {
		events <- ev
	})

	presets, _ := preset.Load(settings.PresetsPath)

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		tagStore:  st,
		runner:    runner,
		events:    events,
		presets:   presets,
		presetIdx: -1,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.listenEvents())
}

// Message types
type (
	// ProgressMsg carries one runner progress event.
	ProgressMsg struct {
		Event batch.ProgressEvent
	}

	// ScanDoneMsg is sent when folder scanning completes.
	ScanDoneMsg struct {
		Items    []*model.Item
		Failures []scan.LoadError
		Err      error
	}

	// ApplyDoneMsg is sent when a batch action completes.
	ApplyDoneMsg struct {
		Result batch.RunResult
		Err    error
	}
)

// listenEvents waits for the next runner progress event.
func (m Model) listenEvents() tea.Cmd {
	return func() tea.Msg {
		return ProgressMsg{Event: <-m.events}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		m.logs = append(m.logs, LogEntry{Message: msg.Event.Message, Level: msg.Event.Level})
		if len(m.logs) > 8 {
			m.logs = m.logs[len(m.logs)-8:]
		}
		if m.state == StateApplying && msg.Event.Level == batch.LevelVerbose {
			m.applyDone++
			if m.applyTotal > 0 {
				cmds = append(cmds, m.progress.SetPercent(float64(m.applyDone)/float64(m.applyTotal)))
			}
		}
		cmds = append(cmds, m.listenEvents())

	case ScanDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.items = msg.Items
			m.cursor = 0
			m.state = StateBrowse
			for _, failure := range msg.Failures {
				m.logs = append(m.logs, LogEntry{
					Message: fmt.Sprintf("Could not load %s: %v", failure.Path, failure.Err),
					Level:   batch.LevelWarning,
				})
			}
		}

	case ApplyDoneMsg:
		m.state = StateBrowse
		if msg.Err != nil {
			m.logs = append(m.logs, LogEntry{Message: msg.Err.Error(), Level: batch.LevelError})
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return m, tea.Quit

	case "esc":
		switch m.state {
		case StateInput:
			return m, tea.Quit
		case StateBrowse:
			if m.previewT != "" {
				m.previewT = ""
				return m, nil
			}
			m.state = StateInput
			m.items = nil
			m.textInput.Focus()
		case StateScanning, StateApplying:
			m.cancel()
			m.ctx, m.cancel = context.WithCancel(context.Background())
		}

	case "enter":
		switch m.state {
		case StateInput:
			if m.textInput.Value() != "" {
				m.state = StateScanning
				return m, tea.Batch(m.startScan(m.textInput.Value()), m.spinner.Tick)
			}
		case StateBrowse:
			return m.startApply()
		}

	case "up", "k":
		if m.state == StateBrowse && m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.state == StateBrowse && m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case " ":
		if m.state == StateBrowse && m.cursor < len(m.items) {
			m.items[m.cursor].Selected = !m.items[m.cursor].Selected
		}

	case "a":
		if m.state == StateBrowse {
			for _, item := range m.items {
				item.Selected = true
			}
		}

	case "n":
		if m.state == StateBrowse {
			for _, item := range m.items {
				item.Selected = false
			}
		}

	case "tab":
		if m.state == StateBrowse && len(m.presets) > 0 {
			m.presetIdx++
			if m.presetIdx >= len(m.presets) {
				m.presetIdx = -1
			}
		}

	case "v":
		if m.state == StateBrowse && m.cursor < len(m.items) {
			cfg, ok := m.activeConfig()
			if ok {
				item := m.items[m.cursor]
				after, _ := m.runner.Preview(item, cfg)
				m.previewT = batch.PreviewReport(item, after, len(batch.Selected(m.items)))
			}
		}

	case "u":
		if m.state == StateBrowse {
			if entry, ok := m.runner.Undo(); ok {
				m.syncFromEntry(entry, false)
			}
		}

	case "r":
		if m.state == StateBrowse {
			if entry, ok := m.runner.Redo(); ok {
				m.syncFromEntry(entry, true)
			}
		}

	case "q":
		if m.state == StateBrowse || m.state == StateError {
			return m, tea.Quit
		}
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// activeConfig returns the pipeline configuration of the selected
// preset.
func (m Model) activeConfig() (ops.Config, bool) {
	if m.presetIdx < 0 || m.presetIdx >= len(m.presets) {
		return ops.Config{}, false
	}
	return m.presets[m.presetIdx].Config(), true
}

// syncFromEntry refreshes in-memory items after an undo or redo wrote
// snapshots back through the store.
func (m *Model) syncFromEntry(entry history.Entry, useAfter bool) {
	byPath := make(map[string]*model.Item, len(m.items))
	for _, item := range m.items {
		byPath[item.Path] = item
	}
	for _, st := range entry.Items {
		item, ok := byPath[st.Path]
		if !ok {
			continue
		}
		if useAfter {
			item.Restore(st.After)
		} else {
			item.Restore(st.Before)
		}
		item.MarkSaved()
	}
}

// startScan kicks off folder scanning in the background.
func (m Model) startScan(root string) tea.Cmd {
	scanner := scan.NewScanner(m.tagStore, m.settings.Extensions, m.settings.MaxConcurrentLoads)
	ctx := m.ctx
	return func() tea.Msg {
		items, failures, err := scanner.Scan(ctx, root)
		return ScanDoneMsg{Items: items, Failures: failures, Err: err}
	}
}

// startApply kicks off the batch action for the current preset.
func (m Model) startApply() (tea.Model, tea.Cmd) {
	cfg, ok := m.activeConfig()
	if !ok {
		m.logs = append(m.logs, LogEntry{Message: "No preset selected (tab to cycle)", Level: batch.LevelWarning})
		return m, nil
	}

	selected := batch.Selected(m.items)
	if len(selected) == 0 {
		m.logs = append(m.logs, LogEntry{Message: "No files selected", Level: batch.LevelWarning})
		return m, nil
	}

	m.state = StateApplying
	m.previewT = ""
	m.applyTotal = len(selected)
	m.applyDone = 0

	label := fmt.Sprintf("Applied preset %q to %d file(s)", m.presets[m.presetIdx].Name, len(selected))
	runner := m.runner
	ctx := m.ctx
	applyCmd := func() tea.Msg {
		result, err := runner.Run(ctx, selected, cfg, label)
		return ApplyDoneMsg{Result: result, Err: err}
	}
	return m, tea.Batch(applyCmd, m.progress.SetPercent(0), m.spinner.Tick)
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🏷  Bulk Tag Utility"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Batch edit audio file tags"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateScanning:
		b.WriteString(m.viewScanning())
	case StateBrowse:
		b.WriteString(m.viewBrowse())
	case StateApplying:
		b.WriteString(m.viewApplying())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter music folder:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Extensions: %s", strings.Join(m.settings.Extensions, ", "))))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewScanning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Scanning for audio files..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	selected := len(batch.Selected(m.items))
	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d (%d selected)", len(m.items), selected)))
	b.WriteString("   ")
	b.WriteString(m.presetLabel())
	b.WriteString("\n\n")

	start := m.cursor - visibleFiles/2
	if start > len(m.items)-visibleFiles {
		start = len(m.items) - visibleFiles
	}
	if start < 0 {
		start = 0
	}
	end := start + visibleFiles
	if end > len(m.items) {
		end = len(m.items)
	}

	for i := start; i < end; i++ {
		item := m.items[i]
		check := "☐"
		if item.Selected {
			check = "☑"
		}
		line := fmt.Sprintf("%s %s", check, item.DisplayName())
		if item.Modified() {
			line += " *"
		}
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if end < len(m.items) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(m.items)-end)))
		b.WriteString("\n")
	}

	if m.previewT != "" {
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(strings.TrimRight(m.previewT, "\n")))
		b.WriteString("\n")
	}

	if len(m.logs) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderLogs())
	}

	return b.String()
}

func (m Model) presetLabel() string {
	if m.presetIdx < 0 || m.presetIdx >= len(m.presets) {
		if len(m.presets) == 0 {
			return dimStyle.Render("No presets found")
		}
		return dimStyle.Render("Preset: none")
	}
	p := m.presets[m.presetIdx]
	return subtitleStyle.Render(fmt.Sprintf("Preset: %s (%d op(s))", p.Name, p.Config().Enabled()))
}

func (m Model) viewApplying() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Applying operations..."))
	b.WriteString("\n\n")

	var percent float64
	if m.applyTotal > 0 {
		percent = float64(m.applyDone) / float64(m.applyTotal)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", m.applyDone, m.applyTotal)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case batch.LevelError:
			style = errorStyle
			prefix = "✗"
		case batch.LevelWarning:
			style = warningStyle
			prefix = "!"
		case batch.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case batch.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: scan • esc: quit"
	case StateScanning:
		return "esc: cancel"
	case StateBrowse:
		help := "space: select • a/n: all/none • tab: preset • v: preview • enter: apply • esc: back • q: quit"
		if m.runner.History().CanUndo() {
			help = "u: undo • " + help
		}
		if m.runner.History().CanRedo() {
			help = "r: redo • " + help
		}
		return help
	case StateApplying:
		return "esc: cancel"
	case StateError:
		return "q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
