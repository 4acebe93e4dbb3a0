package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/a-poor/chatlist/internal/chats"
	"github.com/a-poor/chatlist/internal/logger"
	"github.com/a-poor/chatlist/internal/styles"
)

func makeApp() *cli.Command {
	return &cli.Command{
		Name:  "chatlist",
		Usage: "Browse, pin and start chats from the terminal",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "sidebar-width",
				Usage:   "width of the chat list in columns",
				Value:   styles.DefaultSidebarWidth,
				Sources: cli.EnvVars("CHATLIST_SIDEBAR_WIDTH"),
				Validator: func(w int) error {
					if w < styles.MinSidebarWidth {
						return fmt.Errorf("sidebar width must be at least %d, got %d", styles.MinSidebarWidth, w)
					}
					return nil
				},
			},
			&cli.BoolFlag{
				Name:    "markdown",
				Usage:   "render chat descriptions as markdown",
				Sources: cli.EnvVars("CHATLIST_MARKDOWN"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("CHATLIST_DEBUG"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "file to write logs to",
				Value:   logger.DefaultLogPath,
				Sources: cli.EnvVars("CHATLIST_LOG_FILE"),
			},
			&cli.BoolFlag{
				Name:  "no-alt-screen",
				Usage: "render inline instead of in the alternate screen",
			},
		},
		Action: func(c context.Context, cmd *cli.Command) error {
			// Set up logging before anything grabs a logger
			logger.SetDebug(cmd.Bool("debug"))
			if err := logger.Init(cmd.String("log-file")); err != nil {
				return err
			}
			defer logger.Close()

			cfg := modelConfig{
				SidebarWidth: cmd.Int("sidebar-width"),
				Markdown:     cmd.Bool("markdown"),
			}
			logger.Get().Info("Starting",
				"sidebarWidth", cfg.SidebarWidth,
				"markdown", cfg.Markdown,
			)

			// Create the store and the UI
			store := chats.NewStore(chats.Seed())
			m := newModel(store, cfg)
			defer m.Close()

			opts := []tea.ProgramOption{tea.WithContext(c)}
			if !cmd.Bool("no-alt-screen") {
				opts = append(opts, tea.WithAltScreen())
			}

			// Run it
			if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
				return fmt.Errorf("failed to run program: %w", err)
			}
			return nil
		},
	}
}
