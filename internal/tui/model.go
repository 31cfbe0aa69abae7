package tui

import (
	"context"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/stralyx/simetrio/internal/command"
	"github.com/stralyx/simetrio/internal/depflow"
	"github.com/stralyx/simetrio/internal/gate"
	"github.com/stralyx/simetrio/internal/logbuf"
	"github.com/stralyx/simetrio/internal/worker"
)

type focusZone int

const (
	focusMenu focusZone = iota
	focusForm
	focusLog
)

const (
	placeholderInstance = "Instance name (default: stralyx)"
	placeholderImage    = "Image path (e.g. build/Stralyx/output/debian-smoke.img)"
)

// Form field order: four text inputs followed by the toggles.
const (
	fieldName = iota
	fieldMemory
	fieldCPUs
	fieldDisk
	fieldKDE
	fieldCalamares
	fieldPythonDeps
	fieldSystemDeps
	fieldElevate
	fieldCount
)

type menuEntry struct {
	label  string
	action command.Action
}

type toggleEntry struct {
	label string
	on    bool
}

type Model struct {
	version string
	styles  Styles
	width   int
	height  int

	menuItems    []menuEntry
	selectedItem int

	selectedAction command.Action
	hasSelection   bool

	focus         focusZone
	inputs        []textinput.Model
	toggles       []toggleEntry
	selectedField int

	spinner  spinner.Model
	logView  viewport.Model
	logReady bool

	buffer   *logbuf.Buffer
	exporter *logbuf.Exporter
	builder  *command.Builder
	runner   *worker.Runner
	flow     *depflow.Flow
	logChan  chan string
}

// repoRoot is where the delegated scripts are resolved from. Overridable
// for running the TUI outside a checkout.
func repoRoot() string {
	if root := os.Getenv("SIMETRIO_ROOT"); root != "" {
		return root
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

func NewModel(version string) Model {
	fs := afero.NewOsFs()
	builder := command.NewBuilder(command.NewResolver(fs, repoRoot()))

	logChan := make(chan string, 256)
	runner := worker.NewRunner(logChan)
	flow := depflow.New(builder, runner, gate.New(), gate.New(), logChan)

	styles := NewStyles(BlueTheme())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	inputs := make([]textinput.Model, 4)
	placeholders := []string{placeholderInstance, "Memory (e.g. 4G)", "CPUs (e.g. 2)", "Disk (e.g. 20G)"}
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = 128
		inputs[i].Width = 38
	}
	inputs[fieldName].Focus()

	toggles := []toggleEntry{
		{label: "Install KDE"},
		{label: "Install Calamares"},
		{label: "Install Python deps"},
		{label: "Install system deps"},
		{label: "Elevate (sudo)"},
	}

	menuItems := []menuEntry{
		{label: "Build image", action: command.ActionBuild},
		{label: "Run noVNC", action: command.ActionRunDisplay},
		{label: "Clean", action: command.ActionClean},
		{label: "Stop noVNC", action: command.ActionStopDisplay},
		{label: "Preflight check", action: command.ActionCheck},
		{label: "Dependencies", action: command.ActionDeps},
	}

	return Model{
		version:   version,
		styles:    styles,
		menuItems: menuItems,
		focus:     focusMenu,
		inputs:    inputs,
		toggles:   toggles,
		spinner:   sp,
		logView:   viewport.New(0, 0),
		buffer:    logbuf.NewBuffer(),
		exporter:  logbuf.NewExporter(fs),
		builder:   builder,
		runner:    runner,
		flow:      flow,
		logChan:   logChan,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink, m.listenForLogs())
}

// listenForLogs hands worker and flow output to the UI thread. Only the
// Update loop ever touches displayed state.
func (m Model) listenForLogs() tea.Cmd {
	return func() tea.Msg {
		return logMsg{message: <-m.logChan}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logView.Width = m.logPaneWidth()
		m.logView.Height = m.paneHeight()
		m.logReady = true
		m.refreshLogView()
		return m, nil

	case logMsg:
		m.appendLog(msg.message)
		return m, m.listenForLogs()

	case copyResultMsg:
		if msg.err != nil {
			m.appendLog("Copy failed: " + msg.err.Error())
		} else {
			m.appendLog(msg.message)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// appendLog mirrors text into the bounded buffer and the log pane.
// Rendering stays best-effort: the buffer is the source of truth.
func (m *Model) appendLog(text string) {
	m.buffer.Append(text)
	m.refreshLogView()
}

func (m *Model) refreshLogView() {
	if !m.logReady {
		return
	}
	m.logView.SetContent(m.styledLog())
	m.logView.GotoBottom()
}

// snapshotParams freezes the current form values. The worker only ever
// sees this copy.
func (m Model) snapshotParams() command.FormParams {
	toggle := func(field int) bool {
		return m.toggles[field-fieldKDE].on
	}
	return command.FormParams{
		Name:              m.inputs[fieldName].Value(),
		Memory:            m.inputs[fieldMemory].Value(),
		CPUs:              m.inputs[fieldCPUs].Value(),
		Disk:              m.inputs[fieldDisk].Value(),
		InstallKDE:        toggle(fieldKDE),
		InstallCalamares:  toggle(fieldCalamares),
		InstallPythonDeps: toggle(fieldPythonDeps),
		InstallSystemDeps: toggle(fieldSystemDeps),
		Elevate:           toggle(fieldElevate),
	}
}

// runSelected launches the chosen action. Primary actions go through the
// worker latch; the dependency flow runs on its own goroutine beside it.
func (m *Model) runSelected() tea.Cmd {
	if !m.hasSelection {
		m.appendLog("No action selected. Choose one of the menu items first.")
		return nil
	}

	params := m.snapshotParams()

	if m.selectedAction == command.ActionDeps {
		go m.flow.Run(context.Background(), params)
		return nil
	}

	if m.runner.Busy() {
		m.appendLog("Another task is running; please wait or stop it first.")
		return nil
	}

	inv, err := m.builder.Build(m.selectedAction, params)
	if err != nil {
		m.appendLog("Error preparing action: " + err.Error())
		return nil
	}

	go m.runner.Run(context.Background(), inv)
	return m.spinner.Tick
}

func (m *Model) copyLog() tea.Cmd {
	exporter := m.exporter
	buffer := m.buffer
	return func() tea.Msg {
		result, err := exporter.Copy(buffer)
		return copyResultMsg{message: result, err: err}
	}
}

// selectAction records the menu choice. Selecting noVNC repurposes the
// name field as the image path, as the form's placeholder says.
func (m *Model) selectAction(entry menuEntry) {
	m.selectedAction = entry.action
	m.hasSelection = true
	m.appendLog("Selected action: " + entry.action.String())

	if entry.action == command.ActionRunDisplay {
		m.inputs[fieldName].SetValue("")
		m.inputs[fieldName].Placeholder = placeholderImage
	} else {
		m.inputs[fieldName].Placeholder = placeholderInstance
	}
}
