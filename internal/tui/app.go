// Package tui provides the interactive Bubble Tea dashboard.
package tui

import (
	"strings"
	"time"

	"github.com/sdhar150/crossing-counties/internal/config"
	"github.com/sdhar150/crossing-counties/internal/model"
	"github.com/sdhar150/crossing-counties/internal/pipeline"
	"github.com/sdhar150/crossing-counties/internal/plot"
	"github.com/sdhar150/crossing-counties/internal/tui/components"
	"github.com/sdhar150/crossing-counties/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the rent pipeline finishes.
type DataLoadedMsg struct {
	Result   *pipeline.LoadResult
	Err      error
	LoadTime time.Duration
}

// ProfileMsg is sent when a county selection resolves, including the lazy
// income lookup for the county's state.
type ProfileMsg struct {
	Profile model.CountyProfile
	Err     error
}

// ExportMsg reports the result of a chart export.
type ExportMsg struct {
	Paths []string
	Err   error
}

// App is the root Bubble Tea model.
type App struct {
	cfg      config.Config
	dataDir  string
	bedrooms int

	// Data
	data     *pipeline.LoadResult
	loaded   bool
	loadErr  error
	loadTime time.Duration

	// National averages per bedroom column, computed once per load.
	natAvgs [model.MaxBedrooms + 1]float64

	// Current county selection; nil until the user picks one.
	profile *model.CountyProfile

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	statusMsg string

	// County selection form (huh)
	selecting bool
	selForm   *huh.Form
	sel       selection

	// Per-tab state
	browse   browseState
	settings settingsState

	spinner spinner.Model
}

// Tab indices, matching components.Tabs order.
const (
	tabOverview = iota
	tabCounty
	tabBrowse
	tabSettings
)

const (
	minTerminalWidth   = 70
	maxContentWidth    = 160
	minContentHeight   = 5
	loadTimeResolution = time.Millisecond
)

// NewApp creates a new dashboard model.
func NewApp(cfg config.Config, dataDir string, bedrooms int) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		cfg:      cfg,
		dataDir:  dataDir,
		bedrooms: bedrooms,
		spinner:  sp,
		browse:   newBrowseState(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.cfg, a.dataDir),
		a.spinner.Tick,
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.selForm != nil {
			a.selForm = a.selForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.selecting {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabBrowse {
				a.browse.moveCursor(-1)
			}
		case tea.MouseButtonWheelDown:
			if a.activeTab == tabBrowse {
				a.browse.moveCursor(1)
			}
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)

	case DataLoadedMsg:
		a.loadErr = msg.Err
		a.loadTime = msg.LoadTime
		if msg.Err == nil {
			a.loaded = true
			a.data = msg.Result
			for br := 0; br <= model.MaxBedrooms; br++ {
				a.natAvgs[br] = pipeline.NationalAverage(a.data.Records, br)
			}
			a.browse.setRecords(a.data.Records)
		}
		return a, nil

	case ProfileMsg:
		if msg.Err != nil {
			a.statusMsg = msg.Err.Error()
			return a, nil
		}
		p := msg.Profile
		a.profile = &p
		a.activeTab = tabCounty
		if !p.HasIncome() {
			a.statusMsg = "no income data for " + p.Rent.CountyName
		} else {
			a.statusMsg = ""
		}
		return a, nil

	case ExportMsg:
		if msg.Err != nil {
			a.statusMsg = "export failed: " + msg.Err.Error()
		} else {
			a.statusMsg = "exported " + strings.Join(msg.Paths, ", ")
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	if a.selecting && a.selForm != nil {
		return a.updateSelectForm(msg)
	}

	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.loaded {
		if a.loadErr != nil {
			switch key {
			case "q":
				return a, tea.Quit
			case "r":
				a.loadErr = nil
				return a, tea.Batch(loadDataCmd(a.cfg, a.dataDir), a.spinner.Tick)
			}
		}
		return a, nil
	}

	// Selection form intercepts all keys while active
	if a.selecting && a.selForm != nil {
		return a.updateSelectForm(msg)
	}

	// Browse search mode intercepts all keys when active
	if a.activeTab == tabBrowse && a.browse.searching {
		return a.updateBrowseSearch(msg)
	}

	// Settings field editor intercepts all keys when active
	if a.activeTab == tabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Browse tab list navigation
	if a.activeTab == tabBrowse {
		if handled, m, cmd := a.updateBrowseKeys(key); handled {
			return m, cmd
		}
	}

	// Settings tab navigation
	if a.activeTab == tabSettings {
		if handled, m, cmd := a.updateSettingsKeys(key); handled {
			return m, cmd
		}
	}

	switch key {
	case "q":
		return a, tea.Quit

	case "s":
		if a.data != nil {
			a.selecting = true
			a.sel = selection{bedrooms: a.bedrooms}
			a.selForm = newSelectForm(a.data.Records, &a.sel)
			if a.width > 0 {
				a.selForm = a.selForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.selForm.Init()
		}

	case "e":
		if a.profile != nil {
			return a, exportChartsCmd(*a.profile, a.natAvgs, a.cfg.General.Browser)
		}
		a.statusMsg = "select a county first"
		return a, nil

	case "r":
		a.loaded = false
		a.profile = nil
		a.statusMsg = ""
		return a, tea.Batch(loadDataCmd(a.cfg, a.dataDir), a.spinner.Tick)

	case "o", "c", "b", "x":
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
		}
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.selecting && a.selForm != nil {
		return a.selForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.statusMsg)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabCounty:
		content = a.renderCountyTab(cw)
	case tabBrowse:
		content = a.renderBrowseTab(cw, contentH)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewTooNarrow() string {
	msg := "\n  Terminal too narrow.\n\n  crossing-counties needs at least 70 columns.\n"
	return padHeight(msg, a.height)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ crossing counties"))
	b.WriteString(subtitleStyle.Render(" · Rent & Income Explorer"))
	b.WriteString("\n\n")
	if a.loadErr != nil {
		b.WriteString(errStyle.Render(a.loadErr.Error()))
		b.WriteString("\n\n")
		b.WriteString(subtitleStyle.Render("[r] retry  [q] quit"))
	} else {
		b.WriteString(a.spinner.View())
		b.WriteString(subtitleStyle.Render(" Reading rent workbook..."))
	}

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	bindings := []struct{ key, desc string }{
		{"o c b x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate county list"},
		{"/", "Search counties"},
		{"Enter", "Select highlighted county"},
		{"s", "County selection form"},
		{"e", "Export charts to browser"},
		{"r", "Reload workbooks"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(padRight(bind.key, 10)))
		b.WriteString("  ")
		b.WriteString(descStyle.Render(bind.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Commands ───────────────────────────────────────────────────

// loadDataCmd runs the rent pipeline in the background.
func loadDataCmd(cfg config.Config, dataDir string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		result, err := pipeline.Load(cfg, dataDir)
		return DataLoadedMsg{Result: result, Err: err, LoadTime: time.Since(start)}
	}
}

// profileCmd resolves the rent/income join for one county. The income
// workbook is re-read on every selection; nothing is cached between
// interactions.
func profileCmd(data *pipeline.LoadResult, fips string) tea.Cmd {
	return func() tea.Msg {
		p, err := data.Profile(fips)
		return ProfileMsg{Profile: p, Err: err}
	}
}

// exportChartsCmd writes the county's plotly figures and opens the first
// one in a browser.
func exportChartsCmd(p model.CountyProfile, avgs [model.MaxBedrooms + 1]float64, browser string) tea.Cmd {
	return func() tea.Msg {
		paths, err := plot.ExportCounty(p, avgs, "")
		if err != nil {
			return ExportMsg{Err: err}
		}
		for _, path := range paths {
			if err := plot.OpenInBrowser(browser, path); err != nil {
				return ExportMsg{Paths: paths, Err: err}
			}
		}
		return ExportMsg{Paths: paths}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space in the tab bar
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2
	}
	return -1
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
