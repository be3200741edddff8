package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wm75/gxseq/internal/fasta"
)

// Colors for modern design
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	surfaceColor   = lipgloss.Color("#1F2937") // Dark gray
	textColor      = lipgloss.Color("#F3F4F6") // Light gray
	mutedColor     = lipgloss.Color("#9CA3AF") // Muted gray
	borderColor    = lipgloss.Color("#374151") // Border gray
)

// Styles
var (
	containerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Align(lipgloss.Center)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(surfaceColor).
			Padding(0, 1)

	sequenceStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(lipgloss.Color("#111827")).
			Padding(1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	// Validation verdict styles
	validStyle   = lipgloss.NewStyle().Foreground(secondaryColor).Bold(true)
	invalidStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
)

type listItem struct {
	record fasta.Record
}

func (i listItem) FilterValue() string {
	return i.record.ID
}

func (i listItem) Title() string {
	if i.record.ID != "" {
		return i.record.ID
	}
	return "(no id)"
}

func (i listItem) Description() string {
	// Metadata line shown below the title in the selector list
	desc := i.record.Desc
	if desc == "" {
		desc = "(no description)"
	}
	return fmt.Sprintf("%s    %d bp", desc, i.record.Len())
}

type mode int

const (
	modeSequence mode = iota
	modeHeader
	modeValidation
)

func (m mode) String() string {
	switch m {
	case modeSequence:
		return "Sequence"
	case modeHeader:
		return "Header"
	case modeValidation:
		return "Validation"
	default:
		return "Unknown"
	}
}

type model struct {
	list          list.Model
	records       []fasta.Record
	currentMode   mode
	showHelp      bool
	width         int
	height        int
	totalRecords  int
	selectedIndex int
}

func newModel(records []fasta.Record, title string) model {
	items := make([]list.Item, len(records))
	for i, record := range records {
		items[i] = listItem{record: record}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)

	return model{
		list:         l,
		records:      records,
		currentMode:  modeSequence,
		totalRecords: len(records),
	}
}

// cycleMode advances to the next right-panel view, wrapping around.
func (m model) cycleMode() model {
	m.currentMode = (m.currentMode + 1) % 3
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Calculate list dimensions (left panel takes 1/3 of width)
		listWidth := msg.Width / 3
		listHeight := msg.Height - 4 // Account for borders and status

		m.list.SetWidth(listWidth)
		m.list.SetHeight(listHeight)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "h":
			m.showHelp = !m.showHelp
			return m, nil

		case "tab":
			return m.cycleMode(), nil

		case "1":
			m.currentMode = modeSequence
			return m, nil

		case "2":
			m.currentMode = modeHeader
			return m, nil

		case "3":
			m.currentMode = modeValidation
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.selectedIndex = m.list.Index()
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	// Help modal overlay
	if m.showHelp {
		return m.renderHelpModal()
	}

	leftPanel := m.renderLeftPanel()
	rightPanel := m.renderRightPanel()
	statusBar := m.renderStatusBar()

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		rightPanel,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		statusBar,
	)
}

func (m model) renderLeftPanel() string {
	listWidth := m.width / 3

	return containerStyle.
		Width(listWidth - 2).
		Height(m.height - 4).
		Render(m.list.View())
}

func (m model) renderRightPanel() string {
	rightWidth := (m.width * 2) / 3

	if len(m.records) == 0 {
		return containerStyle.
			Width(rightWidth - 2).
			Height(m.height - 4).
			Render("No records available")
	}

	selectedItem := m.list.SelectedItem()
	if selectedItem == nil {
		return containerStyle.
			Width(rightWidth - 2).
			Height(m.height - 4).
			Render("No item selected")
	}

	record := selectedItem.(listItem).record
	content := m.renderRecord(record)

	return containerStyle.
		Width(rightWidth - 2).
		Height(m.height - 4).
		Render(content)
}

// renderRecord builds the right-panel content for one record in the
// current view mode.
func (m model) renderRecord(record fasta.Record) string {
	header := titleStyle.Render(fmt.Sprintf("%s (%d bp)", record.ID, record.Len()))

	var content string
	switch m.currentMode {
	case modeSequence:
		content = m.formatSequence(record.Seq, "Sequence")
	case modeHeader:
		desc := record.Desc
		if desc == "" {
			desc = mutedStyle.Render("(no description)")
		}
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			mutedStyle.Render("ID: ")+record.ID,
			mutedStyle.Render("Description: ")+desc,
		)
	case modeValidation:
		content = renderVerdict(record)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		content,
	)
}

// renderVerdict shows the result of the record validation predicate.
func renderVerdict(record fasta.Record) string {
	switch err := record.Check(); err {
	case nil:
		return validStyle.Render("valid record")
	case fasta.ErrMissingID:
		return invalidStyle.Render("record has no id")
	case fasta.ErrNonASCIISeq:
		return invalidStyle.Render("sequence contains non-ascii data")
	default:
		return invalidStyle.Render(err.Error())
	}
}

func (m model) formatSequence(sequence, title string) string {
	if sequence == "" {
		return mutedStyle.Render(fmt.Sprintf("No %s available", strings.ToLower(title)))
	}

	titleStr := lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true).
		Render(title + ":")

	// Format sequence with wrapping
	sequenceContent := sequenceStyle.
		Width(m.width*2/3 - 6). // Account for padding and borders
		Render(sequence)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStr,
		"",
		sequenceContent,
	)
}

func (m model) renderStatusBar() string {
	leftInfo := fmt.Sprintf("%d/%d records", m.selectedIndex+1, m.totalRecords)
	centerInfo := fmt.Sprintf("Mode: %s", m.currentMode.String())
	rightInfo := "Press 'h' for help, 'q' to quit"

	totalUsed := len(leftInfo) + len(centerInfo) + len(rightInfo)
	spacing := m.width - totalUsed - 6 // Account for padding

	var statusContent string
	if spacing > 0 {
		leftSpacing := spacing / 2
		rightSpacing := spacing - leftSpacing

		statusContent = fmt.Sprintf("%s%s%s%s%s",
			leftInfo,
			strings.Repeat(" ", leftSpacing),
			centerInfo,
			strings.Repeat(" ", rightSpacing),
			rightInfo,
		)
	} else {
		// Fallback for narrow terminals
		statusContent = fmt.Sprintf("%s | %s", leftInfo, centerInfo)
	}

	return statusBarStyle.
		Width(m.width).
		Render(statusContent)
}

func (m model) renderHelpModal() string {
	helpContent := `FASTA Record Browser - Help

Navigation:
  up/down, j/k  Navigate list
  /             Filter records by id
  Enter         Select record

View Modes:
  1, tab        Show sequence
  2             Show header fields
  3             Show validation verdict

General:
  h             Toggle this help
  q, Ctrl+C     Quit application

Current Mode: ` + m.currentMode.String() + `
Total Records: ` + fmt.Sprintf("%d", m.totalRecords) + `
`

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Background(surfaceColor).
		Foreground(textColor).
		Width(60).
		Align(lipgloss.Center)

	modal := modalStyle.Render(helpContent)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
	)
}

func main() {
	input := flag.String("in", "-", "input FASTA file path ('-' for stdin)")
	flag.Parse()

	rc, err := fasta.Open(*input)
	if err != nil {
		log.Fatal(err)
	}
	records, err := fasta.NewReader(rc).ReadAll()
	rc.Close()
	if err != nil {
		log.Fatal(err)
	}

	p := tea.NewProgram(newModel(records, "FASTA Records"), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
