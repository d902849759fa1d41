// Package tui is the interactive wrapper around the pipeline: a filter form,
// a run-on-demand trigger, and a results browser with spreadsheet export.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jobscout/internal/config"
	"jobscout/internal/export"
	"jobscout/internal/model"
	"jobscout/internal/pipeline"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(1, 0, 1, 2)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(24).
			Padding(0, 0, 0, 2)

	focusedLabelStyle = labelStyle.
				Foreground(lipgloss.Color("39"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0, 0, 2)

	statusStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Padding(0, 0, 0, 2)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(0, 0, 0, 2)

	rowStyle = lipgloss.NewStyle().
			Padding(0, 0, 0, 2)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("24")).
				Padding(0, 0, 0, 2)

	rowSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 0, 0, 4)
)

type viewState int

const (
	viewForm viewState = iota
	viewRunning
	viewResults
)

// Form field indexes, top to bottom.
const (
	fieldCountries = iota
	fieldExcludes
	fieldOutput
	fieldSenior
	fieldIntern
	fieldCount
)

// resultsMsg is sent when an async pipeline run completes.
type resultsMsg struct {
	postings []model.JobPosting
	warnings []model.Warning
}

// savedMsg is sent when an async spreadsheet save completes.
type savedMsg struct {
	path string
	err  error
}

type uiModel struct {
	cfg    *config.Config
	logger *slog.Logger

	view  viewState
	focus int

	countries     textinput.Model
	excludes      textinput.Model
	output        textinput.Model
	excludeSenior bool
	excludeIntern bool

	spin spinner.Model

	postings []model.JobPosting
	warnings []model.Warning
	cursor   int
	offset   int
	height   int
	saved    string
	saveErr  string
}

func newModel(cfg *config.Config, logger *slog.Logger) uiModel {
	countries := textinput.New()
	countries.Placeholder = "PL, DE, CH"
	countries.SetValue(strings.Join(cfg.Countries, ", "))
	countries.Focus()

	excludes := textinput.New()
	excludes.Placeholder = "keywords, comma-separated"
	excludes.SetValue(strings.Join(cfg.ExcludeKeywords, ", "))

	output := textinput.New()
	output.SetValue(cfg.Output)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	return uiModel{
		cfg:       cfg,
		logger:    logger,
		countries: countries,
		excludes:  excludes,
		output:    output,
		spin:      sp,
		height:    24,
	}
}

func (m uiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case resultsMsg:
		m.postings = msg.postings
		m.warnings = msg.warnings
		m.cursor = 0
		m.offset = 0
		m.saved = ""
		m.saveErr = ""
		m.view = viewResults
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.saveErr = msg.err.Error()
		} else {
			m.saved = msg.path
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.view {
		case viewForm:
			return m.updateForm(msg)
		case viewRunning:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		case viewResults:
			return m.updateResults(msg)
		}
	}
	return m, nil
}

func (m uiModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		m.focus = (m.focus + 1) % fieldCount
		return m.refocus(), nil
	case "shift+tab", "up":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		return m.refocus(), nil
	case " ":
		switch m.focus {
		case fieldSenior:
			m.excludeSenior = !m.excludeSenior
			return m, nil
		case fieldIntern:
			m.excludeIntern = !m.excludeIntern
			return m, nil
		}
	case "enter", "ctrl+r":
		m.view = viewRunning
		return m, tea.Batch(m.spin.Tick, m.runPipeline())
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldCountries:
		m.countries, cmd = m.countries.Update(msg)
	case fieldExcludes:
		m.excludes, cmd = m.excludes.Update(msg)
	case fieldOutput:
		m.output, cmd = m.output.Update(msg)
	}
	return m, cmd
}

func (m uiModel) refocus() uiModel {
	m.countries.Blur()
	m.excludes.Blur()
	m.output.Blur()
	switch m.focus {
	case fieldCountries:
		m.countries.Focus()
	case fieldExcludes:
		m.excludes.Focus()
	case fieldOutput:
		m.output.Focus()
	}
	return m
}

func (m uiModel) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = viewForm
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.offset {
				m.offset = m.cursor
			}
		}
	case "down", "j":
		if m.cursor < len(m.postings)-1 {
			m.cursor++
			if m.cursor >= m.offset+m.visibleRows() {
				m.offset = m.cursor - m.visibleRows() + 1
			}
		}
	case "s":
		return m, m.savePostings()
	}
	return m, nil
}

// runPipeline executes one pipeline run off the UI goroutine.
func (m uiModel) runPipeline() tea.Cmd {
	cfg := m.pipelineConfig()
	logger := m.logger
	return func() tea.Msg {
		postings, warnings := pipeline.Collect(context.Background(), cfg, logger)
		return resultsMsg{postings: postings, warnings: warnings}
	}
}

func (m uiModel) savePostings() tea.Cmd {
	postings := m.postings
	path := strings.TrimSpace(m.output.Value())
	return func() tea.Msg {
		return savedMsg{path: path, err: export.WriteXLSX(postings, path)}
	}
}

// pipelineConfig assembles an immutable run config from the form values
// layered over the file config.
func (m uiModel) pipelineConfig() pipeline.Config {
	exclude := splitCSV(m.excludes.Value())
	if m.excludeSenior {
		exclude = append(exclude, "senior")
	}
	if m.excludeIntern {
		exclude = append(exclude, "intern")
	}
	return pipeline.Config{
		IncludeKeywords: m.cfg.IncludeKeywords,
		ExcludeKeywords: exclude,
		Countries:       splitCSV(m.countries.Value()),
		Query:           m.cfg.Query,
		HTTPTimeout:     m.cfg.HTTPTimeout,
		Retry:           m.cfg.Retry,
	}
}

func (m uiModel) View() string {
	switch m.view {
	case viewRunning:
		return titleStyle.Render("jobscout") + "\n" +
			rowStyle.Render(m.spin.View()+" Fetching jobs...") + "\n"
	case viewResults:
		return m.viewResults()
	default:
		return m.viewForm()
	}
}

func (m uiModel) viewForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("jobscout — filter postings"))
	b.WriteString("\n")

	b.WriteString(m.formLine(fieldCountries, "Country codes", m.countries.View()))
	b.WriteString(m.formLine(fieldExcludes, "Exclude keywords", m.excludes.View()))
	b.WriteString(m.formLine(fieldOutput, "Output file", m.output.View()))
	b.WriteString(m.formLine(fieldSenior, "Exclude senior roles", checkbox(m.excludeSenior)))
	b.WriteString(m.formLine(fieldIntern, "Exclude intern roles", checkbox(m.excludeIntern)))

	b.WriteString(hintStyle.Render("tab/↑/↓ navigate  space toggle  enter run  esc quit"))
	return b.String()
}

func (m uiModel) formLine(field int, label, value string) string {
	style := labelStyle
	if m.focus == field {
		style = focusedLabelStyle
	}
	return style.Render(label) + value + "\n"
}

func (m uiModel) viewResults() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("jobscout — %d postings", len(m.postings))))
	b.WriteString("\n")

	for _, w := range m.warnings {
		b.WriteString(warnStyle.Render(fmt.Sprintf("warning [%s]: %s", w.Source, w.Message)))
		b.WriteString("\n")
	}

	if len(m.postings) == 0 {
		b.WriteString(rowStyle.Render("No jobs found with the selected filters."))
		b.WriteString("\n")
	}

	end := min(m.offset+m.visibleRows(), len(m.postings))
	for i := m.offset; i < end; i++ {
		p := m.postings[i]
		line := fmt.Sprintf("%s — %s", p.Title, p.Company)
		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render("> " + line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
		b.WriteString(rowSubtitleStyle.Render(subtitle(p)))
		b.WriteString("\n")
	}

	status := "s save  esc back  q quit"
	if m.saveErr != "" {
		b.WriteString(errStyle.Render("save failed: " + m.saveErr))
		b.WriteString("\n")
	} else if m.saved != "" {
		status = fmt.Sprintf("saved %d rows to %s  —  %s", len(m.postings), m.saved, status)
	}
	b.WriteString(statusStyle.Render(status))
	return b.String()
}

// visibleRows derives how many two-line result items fit under the chrome.
func (m uiModel) visibleRows() int {
	rows := (m.height - 6 - len(m.warnings)) / 2
	if rows < 1 {
		return 1
	}
	return rows
}

func subtitle(p model.JobPosting) string {
	parts := []string{string(p.Source)}
	if p.City != "" {
		parts = append(parts, p.City)
	}
	if p.Country != "" {
		parts = append(parts, p.Country)
	}
	if p.Seniority != "" {
		parts = append(parts, p.Seniority)
	}
	if p.Salary != "" {
		parts = append(parts, p.Salary)
	}
	return strings.Join(parts, " · ")
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Run starts the interactive UI and blocks until the user quits.
func Run(cfg *config.Config, logger *slog.Logger) error {
	p := tea.NewProgram(newModel(cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
