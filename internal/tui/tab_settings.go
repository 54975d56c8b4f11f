package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sdhar150/crossing-counties/internal/cli"
	"github.com/sdhar150/crossing-counties/internal/config"
	"github.com/sdhar150/crossing-counties/internal/model"
	"github.com/sdhar150/crossing-counties/internal/tui/components"
	"github.com/sdhar150/crossing-counties/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldBedrooms
	settingsFieldRentFile
	settingsFieldRentSheet
	settingsFieldIncomeFile
	settingsFieldDataDir
	settingsFieldBrowser
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

// updateSettingsKeys handles navigation on the Settings tab while not
// editing. Returns handled=false for keys that fall through to global
// bindings.
func (a App) updateSettingsKeys(key string) (bool, tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
		a.settings.saved = false
		return true, a, nil
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		a.settings.saved = false
		return true, a, nil
	case "enter":
		m, cmd := a.settingsStartEdit()
		return true, m, cmd
	}
	return false, a, nil
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldTheme:
		names := make([]string, len(theme.All))
		for i, t := range theme.All {
			names[i] = t.Name
		}
		ti.Placeholder = strings.Join(names, ", ")
		ti.SetValue(a.cfg.Appearance.Theme)
	case settingsFieldBedrooms:
		ti.Placeholder = "0-4 (0 = studio)"
		ti.SetValue(strconv.Itoa(a.cfg.General.DefaultBedrooms))
	case settingsFieldRentFile:
		ti.Placeholder = "Fair_Market_Rents.xlsx"
		ti.SetValue(a.cfg.Workbooks.RentFile)
	case settingsFieldRentSheet:
		ti.Placeholder = "FY25_FMRs_revised"
		ti.SetValue(a.cfg.Workbooks.RentSheet)
	case settingsFieldIncomeFile:
		ti.Placeholder = "Income_Data.xlsx"
		ti.SetValue(a.cfg.Workbooks.IncomeFile)
	case settingsFieldDataDir:
		ti.Placeholder = "directory holding the workbooks"
		ti.SetValue(a.cfg.General.DataDir)
	case settingsFieldBrowser:
		ti.Placeholder = "browser command for chart export (empty = system default)"
		ti.SetValue(a.cfg.General.Browser)
	}

	ti.Focus()
	a.settings.input = ti
	return a, textinput.Blink
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				a.cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	case settingsFieldBedrooms:
		if br, err := strconv.Atoi(val); err == nil && br >= 0 && br <= model.MaxBedrooms {
			a.cfg.General.DefaultBedrooms = br
			a.bedrooms = br
		}
	case settingsFieldRentFile:
		if val != "" {
			a.cfg.Workbooks.RentFile = val
		}
	case settingsFieldRentSheet:
		if val != "" {
			a.cfg.Workbooks.RentSheet = val
		}
	case settingsFieldIncomeFile:
		if val != "" {
			a.cfg.Workbooks.IncomeFile = val
		}
	case settingsFieldDataDir:
		a.cfg.General.DataDir = val
	case settingsFieldBrowser:
		a.cfg.General.Browser = val
	}

	a.settings.saveErr = config.Save(a.cfg)
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := a.cfg

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceHover).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover)

	type field struct {
		label string
		value string
	}

	dataDirDisplay := cfg.General.DataDir
	if dataDirDisplay == "" {
		dataDirDisplay = "(search paths)"
	}
	browserDisplay := cfg.General.Browser
	if browserDisplay == "" {
		browserDisplay = "(system default)"
	}

	fields := []field{
		{"Theme", cfg.Appearance.Theme},
		{"Default Unit Size", cli.BedroomLabel(cfg.General.DefaultBedrooms)},
		{"Rent Workbook", cfg.Workbooks.RentFile},
		{"Rent Sheet", cfg.Workbooks.RentSheet},
		{"Income Workbook", cfg.Workbooks.IncomeFile},
		{"Data Directory", dataDirDisplay},
		{"Browser", browserDisplay},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
		} else {
			formBody.WriteString("  ")
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel  (workbook changes apply after [r] reload)"))

	// General info card
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Rent workbook:   ") + valueStyle.Render(a.data.Paths.RentPath) + "\n")
	incomePath := a.data.Paths.IncomePath
	if incomePath == "" {
		incomePath = "(not found)"
	}
	infoBody.WriteString(labelStyle.Render("Income workbook: ") + valueStyle.Render(incomePath) + "\n")
	infoBody.WriteString(labelStyle.Render("Counties loaded: ") + valueStyle.Render(cli.FormatNumber(int64(len(a.data.Records)))) + "\n")
	infoBody.WriteString(labelStyle.Render("Load time:       ") + valueStyle.Render(a.loadTime.Round(loadTimeResolution).String()) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:     ") + valueStyle.Render(config.ConfigPath()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
