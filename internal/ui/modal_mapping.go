package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// mappingModal creates a discovery mapping from a history artist name to a
// collection entry.
type mappingModal struct {
	name     textinput.Model
	albumID  textinput.Model
	focusIdx int
	err      string
}

func newMappingModal(historyName string) *mappingModal {
	name := textinput.New()
	name.Placeholder = "name as scrobbled"
	name.CharLimit = 120
	name.Width = 32
	name.SetValue(historyName)
	name.Focus()

	albumID := textinput.New()
	albumID.Placeholder = "collection album id"
	albumID.CharLimit = 12
	albumID.Width = 32

	return &mappingModal{name: name, albumID: albumID}
}

func (d *mappingModal) Update(msg tea.KeyMsg, app *Model) (Modal, tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		return d, nil, true

	case "tab", "shift+tab":
		d.focusIdx = 1 - d.focusIdx
		if d.focusIdx == 0 {
			d.name.Focus()
			d.albumID.Blur()
		} else {
			d.albumID.Focus()
			d.name.Blur()
		}
		return d, nil, false

	case "enter":
		historyName := strings.TrimSpace(d.name.Value())
		id, err := validateMapping(historyName, d.albumID.Value())
		if err != nil {
			d.err = err.Error()
			return d, nil, false
		}
		client, localCache := app.client, app.cache
		cmd := app.runAction("Mapped "+historyName, true, func(ctx context.Context) error {
			_, err := client.CreateMapping(ctx, historyName, id)
			if err == nil && localCache != nil {
				localCache.InvalidateView("history")
			}
			return err
		})
		return d, cmd, true
	}

	var cmd tea.Cmd
	if d.focusIdx == 0 {
		d.name, cmd = d.name.Update(msg)
	} else {
		d.albumID, cmd = d.albumID.Update(msg)
	}
	d.err = ""
	return d, cmd, false
}

func (d *mappingModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	content := styles.MutedText.Render("History name") + "\n" +
		d.name.View() + "\n\n" +
		styles.MutedText.Render("Collection album ID") + "\n" +
		d.albumID.View() + "\n" +
		renderModalError(theme, d.err) +
		renderModalHint(theme, "tab: next field  ·  enter: map  ·  esc: cancel")
	return renderModalBox(theme, width, height, "Map artist", content)
}
