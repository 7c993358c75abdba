package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// addSellerModal prompts for a Discogs marketplace username to monitor.
type addSellerModal struct {
	input textinput.Model
	err   string
}

func newAddSellerModal() *addSellerModal {
	input := textinput.New()
	input.Placeholder = "discogs username"
	input.CharLimit = 64
	input.Width = 32
	input.Focus()
	return &addSellerModal{input: input}
}

func (d *addSellerModal) Update(msg tea.KeyMsg, app *Model) (Modal, tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		return d, nil, true

	case "enter":
		username := strings.TrimSpace(d.input.Value())
		if err := validateSellerUsername(username); err != nil {
			d.err = err.Error()
			return d, nil, false
		}
		client := app.client
		cmd := app.runAction("Added "+username, false, func(ctx context.Context) error {
			_, err := client.AddSeller(ctx, username)
			return err
		})
		return d, cmd, true
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	d.err = ""
	return d, cmd, false
}

func (d *addSellerModal) View(theme Theme, width, height int) string {
	content := theme.Styles().MutedText.Render("Username") + "\n" +
		d.input.View() + "\n" +
		renderModalError(theme, d.err) +
		renderModalHint(theme, "enter: add  ·  esc: cancel")
	return renderModalBox(theme, width, height, "Add seller", content)
}
