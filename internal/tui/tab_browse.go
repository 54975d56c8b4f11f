package tui

import (
	"fmt"
	"strings"

	"github.com/sdhar150/crossing-counties/internal/cli"
	"github.com/sdhar150/crossing-counties/internal/model"
	"github.com/sdhar150/crossing-counties/internal/pipeline"
	"github.com/sdhar150/crossing-counties/internal/tui/components"
	"github.com/sdhar150/crossing-counties/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// browseState holds the county browser tab state.
type browseState struct {
	records   []model.RentRecord // full cleaned table
	filtered  []model.RentRecord // records matching the search query
	cursor    int
	offset    int // scroll offset for the list
	searching bool
	search    textinput.Model
}

func newBrowseState() browseState {
	ti := textinput.New()
	ti.Placeholder = "county, state code, or FIPS"
	ti.CharLimit = 64
	ti.Width = 30
	ti.Prompt = "/ "
	return browseState{search: ti}
}

func (bs *browseState) setRecords(records []model.RentRecord) {
	bs.records = records
	bs.applyFilter()
}

func (bs *browseState) applyFilter() {
	query := strings.TrimSpace(bs.search.Value())
	if query == "" {
		bs.filtered = bs.records
	} else {
		bs.filtered = pipeline.SearchCounties(bs.records, query)
	}
	if bs.cursor >= len(bs.filtered) {
		bs.cursor = len(bs.filtered) - 1
	}
	if bs.cursor < 0 {
		bs.cursor = 0
	}
	bs.offset = 0
}

func (bs *browseState) moveCursor(delta int) {
	bs.cursor += delta
	if bs.cursor < 0 {
		bs.cursor = 0
	}
	if bs.cursor >= len(bs.filtered) {
		bs.cursor = len(bs.filtered) - 1
	}
	if bs.cursor < 0 {
		bs.cursor = 0
	}
}

// updateBrowseKeys handles list navigation on the Browse tab. Returns
// handled=false for keys that should fall through to the global bindings.
func (a App) updateBrowseKeys(key string) (bool, tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		a.browse.moveCursor(1)
		return true, a, nil
	case "k", "up":
		a.browse.moveCursor(-1)
		return true, a, nil
	case "g", "home":
		a.browse.cursor = 0
		return true, a, nil
	case "G", "end":
		a.browse.cursor = len(a.browse.filtered) - 1
		if a.browse.cursor < 0 {
			a.browse.cursor = 0
		}
		return true, a, nil
	case "/":
		a.browse.searching = true
		a.browse.search.Focus()
		return true, a, textinput.Blink
	case "esc":
		if a.browse.search.Value() != "" {
			a.browse.search.SetValue("")
			a.browse.applyFilter()
		}
		return true, a, nil
	case "enter":
		if a.browse.cursor < len(a.browse.filtered) {
			fips := a.browse.filtered[a.browse.cursor].FIPS
			return true, a, profileCmd(a.data, fips)
		}
		return true, a, nil
	}
	return false, a, nil
}

// updateBrowseSearch handles keys while the search input is focused.
func (a App) updateBrowseSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.browse.searching = false
		a.browse.search.Blur()
		return a, nil
	case "esc":
		a.browse.searching = false
		a.browse.search.Blur()
		a.browse.search.SetValue("")
		a.browse.applyFilter()
		return a, nil
	}

	var cmd tea.Cmd
	a.browse.search, cmd = a.browse.search.Update(msg)
	a.browse.applyFilter()
	return a, cmd
}

func (a App) renderBrowseTab(cw, h int) string {
	t := theme.Active
	bs := a.browse

	var header string
	if bs.searching || bs.search.Value() != "" {
		header = bs.search.View() + "\n"
	}

	if len(bs.filtered) == 0 {
		body := lipgloss.NewStyle().Foreground(t.TextMuted).Render("No counties match")
		return components.ContentCard("Browse", header+body, cw)
	}

	leftW := cw * 2 / 5
	if leftW < 34 {
		leftW = 34
	}
	rightW := cw - leftW

	// Left pane: county list
	leftInner := components.CardInnerWidth(leftW)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent).Bold(true)

	visible := h - 5 // card border + title + hint line
	if header != "" {
		visible--
	}
	if visible < 5 {
		visible = 5
	}

	offset := bs.offset
	if bs.cursor < offset {
		offset = bs.cursor
	}
	if bs.cursor >= offset+visible {
		offset = bs.cursor - visible + 1
	}

	end := offset + visible
	if end > len(bs.filtered) {
		end = len(bs.filtered)
	}

	var leftBody strings.Builder
	leftBody.WriteString(header)
	for i := offset; i < end; i++ {
		r := bs.filtered[i]
		line := fmt.Sprintf("%-5s %s", r.FIPS, truncStr(r.CountyName+", "+r.StateCode, leftInner-6))
		if len(line) < leftInner {
			line += strings.Repeat(" ", leftInner-len([]rune(line)))
		}
		if i == bs.cursor {
			leftBody.WriteString(selectedStyle.Render(line))
		} else {
			leftBody.WriteString(rowStyle.Render(line))
		}
		leftBody.WriteString("\n")
	}

	title := fmt.Sprintf("Counties (%s)", cli.FormatNumber(int64(len(bs.filtered))))
	leftCard := components.ContentCard(title, leftBody.String(), leftW)

	// Right pane: rent detail for the highlighted county
	sel := bs.filtered[bs.cursor]
	rightCard := components.ContentCard(sel.CountyName+", "+sel.StateCode, a.renderBrowseDetail(sel, rightW), rightW)

	return components.CardRow([]string{leftCard, rightCard})
}

func (a App) renderBrowseDetail(r model.RentRecord, w int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(w)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	if r.MetroArea != "" {
		b.WriteString(mutedStyle.Render(truncStr(r.MetroArea, innerW)))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(strings.Repeat("─", min(innerW, 40))))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s    %s %s\n\n",
		labelStyle.Render("FIPS:"), valueStyle.Render(r.FIPS),
		labelStyle.Render("State FIPS:"), valueStyle.Render(r.StateFIPS)))

	for br := 0; br <= model.MaxBedrooms; br++ {
		mark := ""
		if r.Imputed[br] {
			mark = dimStyle.Render(" *")
		}
		b.WriteString(fmt.Sprintf("%s %s%s\n",
			labelStyle.Render(fmt.Sprintf("%-8s", cli.BedroomLabel(br))),
			valueStyle.Render(cli.FormatMoney(r.Rents[br])),
			mark))
	}
	if r.Imputed != [model.MaxBedrooms + 1]bool{} {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("* median-imputed"))
	}

	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("[Enter] open in County tab  [/] search  [j/k] navigate"))

	return b.String()
}
