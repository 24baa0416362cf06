// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// tickMsg advances the replay by one step.
type tickMsg struct{}

// playModel replays a search: first the visited trace, then the path.
type playModel struct {
	s       *solved
	visited []string
	path    []string
	step    int // cells revealed so far across visited then path
	delay   time.Duration
	paused  bool
	styled  bool
}

func newPlayModel(s *solved, delay time.Duration, styled bool) playModel {
	m := playModel{s: s, visited: s.result.Visited, delay: delay, styled: styled}
	if s.result.Found() {
		m.path = s.result.Path
	}
	return m
}

func (m playModel) total() int { return len(m.visited) + len(m.path) }

func (m playModel) finished() bool { return m.step >= m.total() }

func (m playModel) tick() tea.Cmd {
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m playModel) Init() tea.Cmd {
	return m.tick()
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "space", "p":
			m.paused = !m.paused
			if !m.paused && !m.finished() {
				return m, m.tick()
			}
		case "right", "l":
			if !m.finished() {
				m.step++
			}
		case "end":
			m.step = m.total()
		case "r":
			m.step = 0
			if !m.paused {
				return m, m.tick()
			}
		}
	case tickMsg:
		if m.paused || m.finished() {
			return m, nil
		}
		m.step++
		if m.finished() {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

// frame returns the visited and path prefixes revealed at the current step.
func (m playModel) frame() (visited, path []string) {
	n := min(m.step, len(m.visited))
	visited = m.visited[:n]
	if m.step > len(m.visited) {
		path = m.path[:m.step-len(m.visited)]
	}
	return visited, path
}

func (m playModel) View() string {
	visited, path := m.frame()

	var b strings.Builder
	title := fmt.Sprintf("%s  %d/%d", m.s.algo, m.step, m.total())
	if m.styled {
		title = StyleTitle.Render(title)
	}
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(renderGrid(m.s.grid, newOverlay(visited, path), m.styled))
	b.WriteString("\n\n")

	status := "space pause  → step  r restart  end skip  q quit"
	switch {
	case m.finished():
		status = summary(m.s.algo, m.s.result) + "  (q quit, r restart)"
	case m.paused:
		status = "paused  " + status
	}
	if m.styled {
		status = styleStatus.Render(status)
	}
	b.WriteString(status)
	b.WriteString("\n")

	return b.String()
}

func (a *app) playCommand() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Replay a search step by step in the terminal",
		Long: `Play solves the grid like solve does, then reveals the visited cells in
search order followed by the final path, one cell per --delay.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := load(ctx, a.cfg)
			if err != nil {
				return err
			}

			delay := time.Duration(a.cfg.Play.DelayMS) * time.Millisecond
			p := tea.NewProgram(newPlayModel(s, delay, !plain),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				return fmt.Errorf("play: %w", err)
			}
			return nil
		},
	}
	a.solveFlags(cmd)
	cmd.Flags().IntVar(&a.cfg.Play.DelayMS, "delay", a.cfg.Play.DelayMS, "milliseconds between steps")
	cmd.Flags().BoolVar(&plain, "plain", false, "render without colors")

	return cmd
}
