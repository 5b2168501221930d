package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
	"github.com/jwebster45206/orion-rescue/pkg/state"
)

const PlaceHolderText = "Type an intent code or alias..."

// intentAliases lets a developer type readable words instead of raw
// classifier codes. Anything not in the table is sent as-is.
var intentAliases = map[string]string{
	"look":      "0000",
	"bridge":    "0003",
	"readyroom": "0002",
	"eng":       "0007",
	"pod":       "0008",
	"panel":     "0009",
	"book":      "0013",
	"read":      "0012",
	"inv":       "0014",
	"fire":      "0015",
	"hatch":     "0032",
	"klaxon":    "0031",
	"screen":    "0035",
	"transfer":  "0036",
	"dave":      "0040",
	"through":   "0046",
	"save":      "0050",
	"launch":    "0051",
	"mission":   "0053",
	"load":      "0058",
	"help":      "0020",
	"wait":      "0026",
}

// transcriptItem is one rendered line of the session, kept unstyled so the
// transcript can be reflowed when the window resizes.
type transcriptItem struct {
	role string // "user", "error", "info", or an event channel
	text string
}

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config       *ConsoleConfig
	client       *http.Client
	shipState    *state.ShipState
	transcript   []transcriptItem
	chatViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	err          error
	loading      bool

	// Load handshake: the next line of input is a code phrase, not an intent.
	awaitingPhrase bool

	// Set once a goodbye event arrives; no further intents are accepted.
	missionOver bool

	// Most recent save phrase, for /copy.
	lastPhrase string

	// Quit confirmation state
	showQuitModal bool

	// Progress bar state
	progressTick int
}

type sessionCreatedMsg struct {
	shipState *state.ShipState
	events    []eventlog.Entry
	err       error
}

type turnMsg struct {
	shipState *state.ShipState
	events    []eventlog.Entry
	err       error
}

type savedMsg struct {
	phrase string
	events []eventlog.Entry
	err    error
}

type endedMsg struct {
	events []eventlog.Entry
	err    error
}

type progressTickMsg struct{}

var (
	chatPanelStyle = lipgloss.NewStyle().
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
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	oscarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 1000
	ta.SetWidth(50)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		config:       cfg,
		client:       client,
		textarea:     ta,
		chatViewport: chatVp,
		metaViewport: metaVp,
		ready:        false,
		loading:      true,
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return tea.Batch(m.startSession(), progressTick(), textarea.Blink)
}

func (m ConsoleUI) startSession() tea.Cmd {
	return func() tea.Msg {
		st, err := createSession(m.client, m.config.APIBaseURL)
		if err != nil {
			return sessionCreatedMsg{nil, nil, err}
		}
		events, err := drainEvents(m.client, m.config.APIBaseURL, st.ID)
		return sessionCreatedMsg{st, events, err}
	}
}

func (m ConsoleUI) sendTurn(intent string) tea.Cmd {
	return func() tea.Msg {
		st, err := sendIntent(m.client, m.config.APIBaseURL, m.shipState.ID, intent)
		if err != nil {
			return turnMsg{nil, nil, err}
		}
		events, err := drainEvents(m.client, m.config.APIBaseURL, st.ID)
		return turnMsg{st, events, err}
	}
}

func (m ConsoleUI) sendSave() tea.Cmd {
	return func() tea.Msg {
		phrase, err := saveSession(m.client, m.config.APIBaseURL, m.shipState.ID)
		if err != nil {
			return savedMsg{"", nil, err}
		}
		events, err := drainEvents(m.client, m.config.APIBaseURL, m.shipState.ID)
		return savedMsg{phrase, events, err}
	}
}

func (m ConsoleUI) sendRestore(phrase string) tea.Cmd {
	return func() tea.Msg {
		st, err := restoreSession(m.client, m.config.APIBaseURL, m.shipState.ID, phrase)
		if err != nil {
			return turnMsg{nil, nil, err}
		}
		events, err := drainEvents(m.client, m.config.APIBaseURL, m.shipState.ID)
		return turnMsg{st, events, err}
	}
}

func (m ConsoleUI) sendGiveUp() tea.Cmd {
	return func() tea.Msg {
		events, err := endSession(m.client, m.config.APIBaseURL, m.shipState.ID)
		return endedMsg{events, err}
	}
}

// appendEvents folds a batch of drained events into the transcript. Control
// entries on the default channel steer the client instead of being shown.
func (m *ConsoleUI) appendEvents(events []eventlog.Entry) {
	for _, e := range events {
		if e.Channel == eventlog.ChannelDefault {
			continue
		}
		if e.Channel == eventlog.ChannelLoad {
			m.awaitingPhrase = true
		}
		if e.Channel == eventlog.ChannelGoodbye {
			m.missionOver = true
		}
		if strings.TrimSpace(e.Text) == "" {
			continue
		}
		m.transcript = append(m.transcript, transcriptItem{role: string(e.Channel), text: e.Text})
	}
}

// writeChatContent rebuilds the chat viewport from the transcript for the
// current viewport width.
func (m *ConsoleUI) writeChatContent() {
	chatWidth := m.chatViewport.Width - 6 // Account for left(3) + right(3) padding
	if chatWidth < 20 {
		chatWidth = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("ORION RESCUE") + "\n\n")
	content.WriteString("Developer console. Type intent codes or aliases; /help for commands.\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", chatWidth-6)) + "\n\n")

	for _, item := range m.transcript {
		wrapped := wordwrap.String(strings.TrimRight(item.text, "\n"), chatWidth-6)
		switch item.role {
		case "user":
			content.WriteString(userStyle.Render("You: ") + wrapped + "\n\n")
		case "oscar":
			content.WriteString(oscarStyle.Render(wrapped) + "\n\n")
		case "special":
			content.WriteString(errorStyle.Render(wrapped) + "\n\n")
		case "goodbye":
			content.WriteString(titleStyle.Render(wrapped) + "\n\n")
		case "load":
			content.WriteString(loadingStyle.Render(wrapped) + "\n\n")
		case "error":
			content.WriteString(errorStyle.Render("Error: "+wrapped) + "\n\n")
		case "info":
			content.WriteString(promptStyle.Render(wrapped) + "\n\n")
		default:
			content.WriteString(narratorStyle.Render(wrapped) + "\n\n")
		}
	}

	if m.loading {
		content.WriteString(m.renderProgressBar())
	}

	m.chatViewport.SetContent(content.String())
	m.chatViewport.GotoBottom()
}

func writeMetadata(st *state.ShipState) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("SHIP STATE") + "\n\n")

	content.WriteString("Session:\n")
	content.WriteString(st.ID.String()[:8] + "...\n\n")

	content.WriteString("Location:\n")
	content.WriteString(st.Location + "\n\n")

	content.WriteString(fmt.Sprintf("Actions: %d\n", st.ActionCount))
	content.WriteString(fmt.Sprintf("Errors:  %d\n\n", st.ErrorCount))

	content.WriteString("Inventory:\n")
	if len(st.Inventory) == 0 {
		content.WriteString("(empty)\n")
	} else {
		for _, item := range st.Inventory {
			content.WriteString(item + "\n")
		}
	}
	content.WriteString("\n")

	content.WriteString("Tracking:\n")
	content.WriteString(fmt.Sprintf("• book: %s\n", st.BookLocation))
	content.WriteString(fmt.Sprintf("• DAVE: %s\n", st.DaveLocation))
	content.WriteString(fmt.Sprintf("• OSCAR: %s\n", st.OscarLocation))
	if st.PanelOpen {
		content.WriteString("• panel open\n")
	}
	if st.HatchOpen {
		content.WriteString("• hatch open\n")
	}
	if st.KlaxonOn {
		content.WriteString("• klaxon on\n")
	}
	if st.Launched {
		content.WriteString("• launched\n")
	}

	content.WriteString("\n")
	content.WriteString("Commands:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• /help: Help\n")
	content.WriteString("• /copy: Copy phrase\n")

	return content.String()
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.chatViewport, vpCmd = m.chatViewport.Update(msg)
		m.textarea, tiCmd = m.textarea.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(tiCmd, vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		chatWidth := int(float64(m.width)*0.75) - 4
		metaWidth := m.width - chatWidth - 6

		m.chatViewport.Width = chatWidth - 2
		m.chatViewport.Height = m.height - 7
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(chatWidth - 4)

		m.ready = true
		m.writeChatContent()
		if m.shipState != nil {
			m.metaViewport.SetContent(writeMetadata(m.shipState))
		}

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			if m.loading || m.shipState == nil {
				return m, nil
			}

			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, "/") {
				return m.handleCommand(input)
			}

			m.textarea.Reset()
			m.transcript = append(m.transcript, transcriptItem{role: "user", text: input})
			m.loading = true
			m.progressTick = 0
			m.writeChatContent()

			if m.missionOver {
				m.loading = false
				m.transcript = append(m.transcript, transcriptItem{role: "info", text: "Mission is over. Ctrl+C to exit."})
				m.writeChatContent()
				return m, nil
			}

			if m.awaitingPhrase {
				m.awaitingPhrase = false
				return m, tea.Batch(m.sendRestore(input), progressTick())
			}

			intent := input
			if code, ok := intentAliases[strings.ToLower(input)]; ok {
				intent = code
			}
			return m, tea.Batch(m.sendTurn(intent), progressTick())
		}

	case sessionCreatedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.transcript = append(m.transcript, transcriptItem{role: "error", text: msg.err.Error()})
		} else {
			m.shipState = msg.shipState
			m.appendEvents(msg.events)
			m.metaViewport.SetContent(writeMetadata(m.shipState))
		}
		m.writeChatContent()
		return m, nil

	case turnMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.transcript = append(m.transcript, transcriptItem{role: "error", text: msg.err.Error()})
		} else {
			if msg.shipState != nil {
				m.shipState = msg.shipState
				m.metaViewport.SetContent(writeMetadata(m.shipState))
			}
			m.appendEvents(msg.events)
		}
		m.writeChatContent()
		return m, nil

	case savedMsg:
		m.loading = false
		if msg.err != nil {
			m.transcript = append(m.transcript, transcriptItem{role: "error", text: msg.err.Error()})
		} else {
			m.lastPhrase = msg.phrase
			m.appendEvents(msg.events)
		}
		m.writeChatContent()
		return m, nil

	case endedMsg:
		m.loading = false
		m.missionOver = true
		if msg.err != nil {
			m.transcript = append(m.transcript, transcriptItem{role: "error", text: msg.err.Error()})
		} else {
			m.appendEvents(msg.events)
		}
		m.writeChatContent()
		return m, nil

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			m.writeChatContent()
			return m, progressTick()
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func (m ConsoleUI) handleCommand(input string) (tea.Model, tea.Cmd) {
	cmd := strings.ToLower(strings.TrimSpace(input))
	m.textarea.Reset()

	switch cmd {
	case "/help":
		helpText := `
Commands:
• /help - Show this help
• /save - Save the game, print the code phrase
• /copy - Copy the last save phrase to the clipboard
• /quit - Give up the mission
• Ctrl+C - Quit console

Anything else is sent to the engine as an intent.
Aliases: look, bridge, readyroom, eng, pod, panel, book,
read, inv, fire, hatch, klaxon, screen, transfer, dave,
through, save, launch, mission, load, help, wait.
Raw codes like 0036 work too.
`
		m.transcript = append(m.transcript, transcriptItem{role: "info", text: helpText})
		m.writeChatContent()

	case "/save":
		if m.shipState == nil || m.missionOver {
			return m, nil
		}
		m.loading = true
		m.progressTick = 0
		m.writeChatContent()
		return m, tea.Batch(m.sendSave(), progressTick())

	case "/copy":
		if m.lastPhrase == "" {
			m.transcript = append(m.transcript, transcriptItem{role: "info", text: "No save phrase yet. /save first."})
		} else if err := clipboard.WriteAll(m.lastPhrase); err != nil {
			m.transcript = append(m.transcript, transcriptItem{role: "error", text: err.Error()})
		} else {
			m.transcript = append(m.transcript, transcriptItem{role: "info", text: "Copied: " + m.lastPhrase})
		}
		m.writeChatContent()

	case "/quit":
		if m.shipState == nil || m.missionOver {
			return m, tea.Quit
		}
		m.loading = true
		m.progressTick = 0
		m.writeChatContent()
		return m, tea.Batch(m.sendGiveUp(), progressTick())
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
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
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
	content.WriteString(modalTitleStyle.Render("Quit Console?"))
	content.WriteString("\n\n")
	content.WriteString("Leave the mission running and close the console?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	chatWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - chatWidth - 6

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", chatWidth-4)),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}

// renderProgressBar creates an animated progress bar for loading states.
func (m ConsoleUI) renderProgressBar() string {
	usable := m.chatViewport.Width - 6
	if usable <= 0 {
		usable = 30
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

// progressTick creates a command that sends a progress tick message.
func progressTick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}
