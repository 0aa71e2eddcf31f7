package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/scenery3d/scenery"
	"github.com/spf13/cobra"
)

func newPickCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a scene from a list, then run it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry()
			if err != nil {
				return err
			}
			final, err := tea.NewProgram(newPicker(reg.Entries())).Run()
			if err != nil {
				return fmt.Errorf("scene picker: %w", err)
			}
			choice := final.(*picker).chosen
			if choice == "" {
				return nil
			}
			return opts.run(cmd, choice)
		},
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).MarginBottom(1)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	itemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).MarginTop(1)
	pickerBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444444")).Padding(0, 1)
)

// picker is a list of scenes; enter chooses one, q or esc leaves without choosing.
type picker struct {
	entries []scenery.Entry
	cursor  int
	chosen  string
}

func newPicker(entries []scenery.Entry) *picker {
	return &picker{entries: entries}
}

func (p *picker) Init() tea.Cmd {
	return nil
}

func (p *picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch key.String() {
	case "ctrl+c", "q", "esc":
		return p, tea.Quit
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.entries)-1 {
			p.cursor++
		}
	case "enter":
		if len(p.entries) > 0 {
			p.chosen = p.entries[p.cursor].Name
		}
		return p, tea.Quit
	default:
		// Digits jump straight to a scene, as they do in the window.
		if s := key.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if i := int(s[0] - '1'); i < len(p.entries) {
				p.chosen = p.entries[i].Name
				return p, tea.Quit
			}
		}
	}
	return p, nil
}

func (p *picker) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("scenery"))
	b.WriteString("\n")
	for i, e := range p.entries {
		line := fmt.Sprintf("%d  %s", i+1, e.Title)
		if i == p.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ move · enter run · q quit"))
	return pickerBox.Render(b.String())
}
