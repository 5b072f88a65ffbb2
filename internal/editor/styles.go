package editor

import (
	"github.com/gdamore/tcell/v2"

	"github.com/soryn/quill/internal/config"
)

// Styles is the theme resolved into tcell styles once at startup.
type Styles struct {
	Main          tcell.Style
	Status        tcell.Style
	Match         tcell.Style
	SelectedMatch tcell.Style
}

func NewStyles(theme config.Theme) Styles {
	base := tcell.StyleDefault.
		Foreground(tcell.GetColor(theme.Foreground)).
		Background(tcell.GetColor(theme.Background))
	return Styles{
		Main: base,
		Status: tcell.StyleDefault.
			Foreground(tcell.GetColor(theme.StatuslineForeground)).
			Background(tcell.GetColor(theme.StatuslineBackground)),
		Match: tcell.StyleDefault.
			Foreground(tcell.GetColor(theme.SearchMatchForeground)).
			Background(tcell.GetColor(theme.SearchMatchBackground)),
		SelectedMatch: tcell.StyleDefault.
			Foreground(tcell.GetColor(theme.SelectedMatchForeground)).
			Background(tcell.GetColor(theme.SelectedMatchBackground)),
	}
}
