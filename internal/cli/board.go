package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/brandsmith/moodgrid/pkg/board"
	"github.com/brandsmith/moodgrid/pkg/session"
)

// boardCommand creates the "board" command, the interactive editor.
func (c *CLI) boardCommand() *cobra.Command {
	var (
		catalogPath string
		boardPath   string
		presetName  string
		fresh       bool
	)

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Edit a board interactively in the terminal",
		Long: `Board opens the moodboard in a terminal editor. The cursor walks
placements in grid order; enter picks a tile up, enter over another
placement swaps the two, esc cancels. The terminal width selects the
breakpoint tier, so resizing the window reflows the board.

The editing session (active preset and swaps) persists between runs;
--fresh starts over.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			boardPreset, reg, err := loadBoard(boardPath)
			if err != nil {
				return err
			}
			if presetName == "" {
				presetName = boardPreset
			}

			store, err := session.NewCLIStore()
			if err != nil {
				return err
			}

			var sess *session.Session
			if !fresh {
				sess, err = store.GetSession(cmd.Context())
				if err != nil {
					c.Logger.Warn("load session", "err", err)
				}
			}
			if sess == nil {
				sess = session.New(cat.Resolve(presetName).Name, session.DefaultTTL)
			} else if presetName != "" {
				sess.SetActivePreset(cat.Resolve(presetName).Name)
			}

			ed := board.NewEditor(cat, reg, board.WithPreset(sess.ActivePreset))
			ed.RestoreSwaps(sess.Swaps)

			model := NewBoardModel(ed)
			p := tea.NewProgram(model, tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("run editor: %w", err)
			}

			// Persist what the user left behind.
			if m, ok := final.(BoardModel); ok {
				sess.SetActivePreset(m.Editor().Preset())
				sess.RecordSwaps(m.Editor().Swaps())
				if err := store.SaveSession(cmd.Context(), sess); err != nil {
					c.Logger.Warn("save session", "err", err)
				} else {
					c.Logger.Debug("session saved", "path", store.Path())
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog file (default: builtin presets)")
	cmd.Flags().StringVar(&boardPath, "board", "", "board file (default: sample brand kit)")
	cmd.Flags().StringVar(&presetName, "preset", "", "preset name (default: previous session or catalog default)")
	cmd.Flags().BoolVar(&fresh, "fresh", false, "discard the previous editing session")
	return cmd
}
