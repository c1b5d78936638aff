package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ryanrudat/Nomenklatura-sub003/pkg/action"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/event"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/ledger"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/state"
)

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config        *ConsoleConfig
	client        *http.Client
	gameState     *state.GameState
	eventViewport viewport.Model
	metaViewport  viewport.Model
	presenter     action.DefaultPresenter
	ready         bool
	width         int
	height        int
	err           error
	loading       bool
	statusMsg     string

	// Scenario selection state
	showScenarioModal bool
	scenarios         []string
	scenarioMap       map[string]string
	selectedScenario  int
	loadingScenarios  bool

	// Quit confirmation state
	showQuitModal bool

	// Progress bar state
	progressTick int
}

type turnResolvedMsg struct {
	resp *TurnResponse
	err  error
}

type gameStateMsg struct {
	gameState *state.GameState
	err       error
}

type scenariosLoadedMsg struct {
	scenarios   []string
	scenarioMap map[string]string
	err         error
}

type gameStateCreatedMsg struct {
	gameState *state.GameState
	err       error
}

type progressTickMsg struct{}

var (
	eventPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("167")). // soviet red
			Bold(true)

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // red
			Bold(true)

	elevatedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // amber

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // light grey

	backgroundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("167")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("167")).
				Bold(true)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

var titleCaser = cases.Title(language.English)

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client) ConsoleUI {
	eventVp := viewport.New(50, 20)
	eventVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		config:            cfg,
		client:            client,
		eventViewport:     eventVp,
		metaViewport:      metaVp,
		ready:             false,
		showScenarioModal: true,
		loadingScenarios:  true,
		selectedScenario:  0,
	}
}

// indicatorLabel turns "elite_loyalty" into "Elite Loyalty".
func indicatorLabel(k ledger.Indicator) string {
	return titleCaser.String(strings.ReplaceAll(string(k), "_", " "))
}

func (m *ConsoleUI) actorName(id string) string {
	if m.gameState != nil {
		if a := m.gameState.Actor(id); a != nil {
			return a.Name
		}
	}
	return id
}

func priorityStyle(p event.Priority) lipgloss.Style {
	switch p {
	case event.PriorityUrgent:
		return urgentStyle
	case event.PriorityElevated:
		return elevatedStyle
	case event.PriorityBackground:
		return backgroundStyle
	default:
		return normalStyle
	}
}

// categoryHeadlines cover reactive events that carry no action kind.
var categoryHeadlines = map[event.Category]string{
	event.CategoryPatron:     "Your patron requires attention",
	event.CategoryRival:      "Your rival moves against you",
	event.CategoryAlly:       "An ally reaches out",
	event.CategoryContact:    "A contact passes word",
	event.CategoryDiscovered: "A new figure takes notice of you",
	event.CategoryEspionage:  "A foreign agent is unmasked",
	event.CategoryIntrigue:   "Word of an intrigue reaches you",
	event.CategoryGovernance: "A matter of state surfaces",
}

// formatEvent renders one event as a wrapped block of styled lines.
func (m *ConsoleUI) formatEvent(e event.Event, width int) string {
	style := priorityStyle(e.Priority)

	var line strings.Builder
	if e.Action != "" {
		line.WriteString(m.actorName(e.ActorID))
		line.WriteString(" ")
		line.WriteString(m.presenter.Describe(e.Action))
		if e.TargetID != "" {
			line.WriteString(", aimed at ")
			line.WriteString(m.actorName(e.TargetID))
		}
		line.WriteString(".")
	} else if headline, ok := categoryHeadlines[e.Category]; ok {
		line.WriteString(headline)
		line.WriteString(": ")
		line.WriteString(m.actorName(e.ActorID))
		line.WriteString(".")
	} else {
		line.WriteString(m.actorName(e.ActorID))
		line.WriteString(" stirs.")
	}

	header := promptStyle.Render(fmt.Sprintf("Turn %d · %s · %s", e.Turn, e.Category, e.Priority))
	body := style.Render(wordwrap.String(line.String(), width))

	var block strings.Builder
	block.WriteString(header + "\n")
	block.WriteString(body + "\n")

	for _, opt := range e.Options {
		block.WriteString(optionStyle.Render("  › "+opt.Label) + "\n")
	}
	return block.String()
}

// writeEventContent rebuilds the event log content for the current width.
func (m *ConsoleUI) writeEventContent() {
	eventWidth := m.eventViewport.Width - 6

	var content strings.Builder
	content.WriteString(titleStyle.Render("NOMENKLATURA") + "\n\n")
	content.WriteString("The apparatus moves with or without you.\n")
	content.WriteString("Press Enter to let another turn pass.\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", max(eventWidth-6, 1))) + "\n\n")

	if m.gameState != nil {
		for _, e := range m.gameState.Events {
			content.WriteString(m.formatEvent(e, eventWidth) + "\n")
		}
	}

	if m.loading {
		content.WriteString(m.renderProgressBar())
	}

	m.eventViewport.SetContent(content.String())
	m.eventViewport.GotoBottom()
}

func writeMetadata(gs *state.GameState) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("SESSION") + "\n\n")

	content.WriteString("Session ID:\n")
	content.WriteString(gs.ID.String()[:8] + "...\n\n")

	content.WriteString("Scenario:\n")
	content.WriteString(gs.Scenario + "\n\n")

	content.WriteString(fmt.Sprintf("Turn: %d\n", gs.Turn))
	content.WriteString(fmt.Sprintf("You: %s, grade %d\n\n", gs.PlayerTrack, gs.PlayerPosition))

	if gs.PatronID != "" {
		content.WriteString("Patron: " + displayName(gs, gs.PatronID) + "\n")
	}
	if gs.RivalID != "" {
		content.WriteString("Rival: " + displayName(gs, gs.RivalID) + "\n")
	}
	content.WriteString("\n")

	if gs.Ledger != nil {
		content.WriteString(titleStyle.Render("INDICATORS") + "\n")
		for _, k := range ledger.Indicators {
			content.WriteString(fmt.Sprintf("%s: %d\n", indicatorLabel(k), gs.Ledger.Get(k)))
		}
		content.WriteString("\n")
	}

	content.WriteString(titleStyle.Render("CAST") + "\n")
	for _, a := range gs.ActorsByPosition() {
		marker := ""
		if a.Status != "" && a.Status != "active" {
			marker = " [" + a.Status + "]"
		}
		content.WriteString(fmt.Sprintf("%d %s%s\n", a.Position, a.Name, marker))
	}

	content.WriteString("\n")
	content.WriteString("Commands:\n")
	content.WriteString("• Enter: Next turn\n")
	content.WriteString("• c: Copy session ID\n")
	content.WriteString("• ↑/↓: Scroll events\n")
	content.WriteString("• Ctrl+C: Quit\n")

	return content.String()
}

func displayName(gs *state.GameState, id string) string {
	if a := gs.Actor(id); a != nil {
		return a.Name
	}
	return id
}

func (m ConsoleUI) Init() tea.Cmd {
	if m.showScenarioModal {
		return m.loadScenarios()
	}
	return nil
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle scenario modal first
	if m.showScenarioModal {
		return m.updateScenarioModal(msg)
	}

	// Handle quit modal second
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		evCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.eventViewport, evCmd = m.eventViewport.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(evCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		eventWidth := int(float64(m.width)*0.7) - 4
		metaWidth := m.width - eventWidth - 6

		m.eventViewport.Width = eventWidth - 2
		m.eventViewport.Height = m.height - 5
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4

		m.ready = true
		m.writeEventContent()
		if m.gameState != nil {
			m.metaViewport.SetContent(writeMetadata(m.gameState))
		}

	case tea.KeyMsg:
		m.statusMsg = ""
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter, tea.KeySpace:
			if m.loading || m.gameState == nil || m.gameState.IsEnded {
				return m, nil
			}
			m.loading = true
			m.progressTick = 0
			m.writeEventContent()
			return m, tea.Batch(m.resolveTurn(), progressTick())
		default:
			switch msg.String() {
			case "q":
				m.showQuitModal = true
				return m, nil
			case "c":
				if m.gameState != nil {
					if err := clipboard.WriteAll(m.gameState.ID.String()); err != nil {
						m.statusMsg = "Clipboard unavailable"
					} else {
						m.statusMsg = "Session ID copied"
					}
				}
				return m, nil
			}
		}

	case turnResolvedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.writeEventContent()
			currentContent := m.eventViewport.View()
			errorMsg := errorStyle.Render("Error: "+msg.err.Error()) + "\n\n"
			m.eventViewport.SetContent(currentContent + errorMsg)
		} else {
			m.gameState = msg.resp.GameState
			m.writeEventContent()
			m.metaViewport.SetContent(writeMetadata(m.gameState))
		}
		m.eventViewport.GotoBottom()
		return m, nil

	case gameStateMsg:
		if msg.err == nil && msg.gameState != nil {
			m.gameState = msg.gameState
			m.metaViewport.SetContent(writeMetadata(m.gameState))
		}

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			m.writeEventContent()
			return m, progressTick()
		}
	}

	m.eventViewport, evCmd = m.eventViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(evCmd, mvCmd)
}

func (m ConsoleUI) resolveTurn() tea.Cmd {
	return func() tea.Msg {
		resp, err := advanceTurn(m.client, m.config.APIBaseURL, m.gameState.ID)
		return turnResolvedMsg{resp, err}
	}
}

func (m ConsoleUI) refreshGameState() tea.Cmd {
	return func() tea.Msg {
		gs, err := getGameState(m.client, m.config.APIBaseURL, m.gameState.ID)
		return gameStateMsg{gs, err}
	}
}

func (m ConsoleUI) loadScenarios() tea.Cmd {
	return func() tea.Msg {
		orderedNames, scenarioMap, err := listScenarios(m.client, m.config.APIBaseURL)
		return scenariosLoadedMsg{orderedNames, scenarioMap, err}
	}
}

func (m ConsoleUI) createGameStateFromScenario(scenarioFile string) tea.Cmd {
	return func() tea.Msg {
		gs, err := createGameState(m.client, m.config.APIBaseURL, scenarioFile)
		return gameStateCreatedMsg{gs, err}
	}
}

func (m ConsoleUI) updateScenarioModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case scenariosLoadedMsg:
		m.loadingScenarios = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.scenarios = msg.scenarios
			m.scenarioMap = msg.scenarioMap
		}

	case gameStateCreatedMsg:
		// Regardless of outcome, we're no longer in the create-game loading phase
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.gameState = msg.gameState
			m.showScenarioModal = false
			if m.width > 0 && m.height > 0 {
				eventWidth := int(float64(m.width)*0.7) - 4
				metaWidth := m.width - eventWidth - 6
				m.eventViewport.Width = eventWidth - 2
				m.eventViewport.Height = m.height - 5
				m.metaViewport.Width = metaWidth - 2
				m.metaViewport.Height = m.height - 4
			}
			m.writeEventContent()
			m.metaViewport.SetContent(writeMetadata(m.gameState))
			m.ready = true
		}
		return m, nil

	case tea.KeyMsg:
		if m.loadingScenarios {
			if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
				return m, tea.Quit
			}
			return m, nil
		}

		if m.err != nil {
			if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
				m.showQuitModal = true
				return m, nil
			}
			return m, nil
		}

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyUp:
			if m.selectedScenario > 0 {
				m.selectedScenario--
			}
		case tea.KeyDown:
			if m.selectedScenario < len(m.scenarios)-1 {
				m.selectedScenario++
			}
		case tea.KeyEnter:
			if len(m.scenarios) > 0 {
				scenarioName := m.scenarios[m.selectedScenario]
				scenarioFile := m.scenarioMap[scenarioName]
				m.loading = true
				return m, m.createGameStateFromScenario(scenarioFile)
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				return m, nil
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Leave the Apparatus?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to quit this session?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) renderScenarioModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder

	if m.loadingScenarios {
		content.WriteString(modalTitleStyle.Render("Loading Scenarios..."))
		content.WriteString("\n\n")
		content.WriteString(loadingStyle.Render("Please wait while we fetch available scenarios..."))
	} else if m.err != nil {
		content.WriteString(modalTitleStyle.Render("Error"))
		content.WriteString("\n\n")
		content.WriteString(errorStyle.Render(fmt.Sprintf("Failed to load scenarios: %v", m.err)))
		content.WriteString("\n\n")
		content.WriteString("Press Ctrl+C to exit")
	} else if m.loading {
		content.WriteString(modalTitleStyle.Render("Convening the Committee..."))
		content.WriteString("\n\n")
		content.WriteString(loadingStyle.Render("Preparing the session..."))
	} else {
		content.WriteString(modalTitleStyle.Render("Select a Scenario"))
		content.WriteString("\n\n")

		for i, name := range m.scenarios {
			if i == m.selectedScenario {
				content.WriteString(modalSelectedItemStyle.Render(fmt.Sprintf("▶ %s", name)))
			} else {
				content.WriteString(modalItemStyle.Render(fmt.Sprintf("  %s", name)))
			}
			content.WriteString("\n")
		}

		content.WriteString("\n")
		content.WriteString(promptStyle.Render("Use ↑/↓ to navigate, Enter to select, Ctrl+C to exit"))
	}

	modal := modalStyle.Width(60).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showScenarioModal {
		return m.renderScenarioModal()
	}

	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	eventWidth := int(float64(m.width)*0.7) - 4
	metaWidth := m.width - eventWidth - 6

	statusLine := ""
	if m.statusMsg != "" {
		statusLine = statusStyle.Render(m.statusMsg)
	} else if m.gameState != nil && m.gameState.IsEnded {
		statusLine = urgentStyle.Render("This session has ended.")
	} else {
		statusLine = promptStyle.Render("Enter: next turn · c: copy session ID · q: quit")
	}

	eventPanel := eventPanelStyle.Width(eventWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.eventViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(eventWidth-4, 1))),
			statusLine,
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, eventPanel, metaPanel)
}

// renderProgressBar creates an animated progress bar for loading states
func (m ConsoleUI) renderProgressBar() string {
	usable := m.eventViewport.Width - 6
	if usable <= 0 {
		usable = 30 // fallback before sizing
	}

	if usable > 80 {
		usable = 80
	} else if usable < 10 {
		usable = 10
	}

	const totalFrames = 40
	frame := m.progressTick % totalFrames
	filled := (frame * usable) / totalFrames

	var bar strings.Builder
	for i := 0; i < usable; i++ {
		if i < filled {
			bar.WriteString("█")
		} else if i == filled && frame%4 < 2 {
			bar.WriteString("▓")
		} else {
			bar.WriteString("░")
		}
	}
	return separatorStyle.Render(bar.String())
}

// progressTick creates a command that sends a progress tick message
func progressTick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}
