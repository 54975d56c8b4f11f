package tui

import (
	"fmt"

	"github.com/sdhar150/crossing-counties/internal/cli"
	"github.com/sdhar150/crossing-counties/internal/model"
	"github.com/sdhar150/crossing-counties/internal/pipeline"

	"github.com/sdhar150/crossing-counties/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// selection holds the in-progress values of the county selection form.
type selection struct {
	state    string
	fips     string
	bedrooms int
}

// newSelectForm builds the state → county → bedrooms form. The county
// options are recomputed whenever the state field changes.
func newSelectForm(records []model.RentRecord, sel *selection) *huh.Form {
	states := pipeline.StatesOf(records, 0)
	stateOpts := make([]huh.Option[string], 0, len(states))
	for _, s := range states {
		label := fmt.Sprintf("%s (%s counties)", s.StateCode, cli.FormatNumber(int64(s.Counties)))
		stateOpts = append(stateOpts, huh.NewOption(label, s.StateCode))
	}

	bedroomOpts := make([]huh.Option[int], 0, model.MaxBedrooms+1)
	for br := 0; br <= model.MaxBedrooms; br++ {
		bedroomOpts = append(bedroomOpts, huh.NewOption(cli.BedroomLabel(br), br))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("State").
				Description("USPS state or territory code").
				Options(stateOpts...).
				Value(&sel.state),

			huh.NewSelect[string]().
				Title("County").
				Description("Counties in the selected state").
				OptionsFunc(func() []huh.Option[string] {
					counties := pipeline.CountiesOf(records, sel.state)
					opts := make([]huh.Option[string], 0, len(counties))
					for _, c := range counties {
						opts = append(opts, huh.NewOption(c.CountyName, c.FIPS))
					}
					return opts
				}, &sel.state).
				Value(&sel.fips),

			huh.NewSelect[int]().
				Title("Unit size").
				Options(bedroomOpts...).
				Value(&sel.bedrooms),
		),
	).WithTheme(formTheme()).WithShowHelp(true)
}

// formTheme adapts the active color theme for huh forms.
func formTheme() *huh.Theme {
	t := theme.Active
	h := huh.ThemeBase()
	h.Focused.Title = h.Focused.Title.Foreground(t.Accent).Bold(true)
	h.Focused.Description = h.Focused.Description.Foreground(t.TextDim)
	h.Focused.SelectSelector = h.Focused.SelectSelector.Foreground(t.Accent).SetString("> ")
	h.Focused.SelectedOption = h.Focused.SelectedOption.Foreground(t.AccentBright)
	h.Focused.UnselectedOption = h.Focused.UnselectedOption.Foreground(t.TextPrimary)
	h.Blurred.Title = h.Blurred.Title.Foreground(t.TextMuted)
	h.Blurred.Description = h.Blurred.Description.Foreground(t.TextDim)
	return h
}

// updateSelectForm routes a message to the active huh form and handles
// completion or abort.
func (a App) updateSelectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.selForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.selForm = f
	}

	switch a.selForm.State {
	case huh.StateCompleted:
		a.selecting = false
		a.selForm = nil
		a.bedrooms = a.sel.bedrooms
		if a.sel.fips != "" {
			return a, profileCmd(a.data, a.sel.fips)
		}
		return a, nil
	case huh.StateAborted:
		a.selecting = false
		a.selForm = nil
		return a, nil
	}

	return a, cmd
}
