package cli

import (
	"github.com/spf13/cobra"

	"github.com/brandsmith/moodgrid/internal/server"
	"github.com/brandsmith/moodgrid/pkg/board"
	"github.com/brandsmith/moodgrid/pkg/errors"
	"github.com/brandsmith/moodgrid/pkg/session"
)

// serveCommand creates the "serve" command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr        string
		catalogPath string
		boardPath   string
		sessionsVia string
		redisAddr   string
		mongoURI    string
		mongoDB     string
		mongoColl   string
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API for the browser client",
		Long: `Serve exposes the grid engine over HTTP. Clients carry a session id
in the X-Moodgrid-Session header; the server keeps the active preset
and swap ledger per session.

Tiles come from a board file, a MongoDB collection (--mongo-uri), or
the sample brand kit. Sessions live in memory by default; use
--sessions file or --sessions redis for persistence.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}

			var reg *board.Registry
			if mongoURI != "" {
				src, err := board.NewMongoSource(ctx, mongoURI, mongoDB, mongoColl)
				if err != nil {
					return err
				}
				defer src.Close(ctx)
				tiles, err := src.Tiles(ctx)
				if err != nil {
					return err
				}
				reg, err = board.NewRegistry(tiles...)
				if err != nil {
					return err
				}
				c.Logger.Info("loaded tiles from mongodb", "count", reg.Len())
			} else {
				_, reg, err = loadBoard(boardPath)
				if err != nil {
					return err
				}
			}

			sessions, err := c.newSessionStore(cmd, sessionsVia, redisAddr)
			if err != nil {
				return err
			}

			artifacts, err := newArtifactCache(noCache)
			if err != nil {
				return err
			}
			defer artifacts.Close()

			srv := server.New(server.Config{Addr: addr}, cat, reg, sessions, artifacts, c.Logger)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog file (default: builtin presets)")
	cmd.Flags().StringVar(&boardPath, "board", "", "board file (default: sample brand kit)")
	cmd.Flags().StringVar(&sessionsVia, "sessions", "memory", "session store (memory|file|redis)")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "redis address for --sessions redis")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "load tiles from a MongoDB collection")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", "moodgrid", "mongodb database name")
	cmd.Flags().StringVar(&mongoColl, "mongo-collection", "tiles", "mongodb collection name")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the rendered-board artifact cache")
	return cmd
}

// newSessionStore builds the session store named by --sessions.
func (c *CLI) newSessionStore(cmd *cobra.Command, via, redisAddr string) (session.Store, error) {
	switch via {
	case "memory":
		return session.NewMemoryStore(), nil
	case "file":
		return session.NewFileStore("")
	case "redis":
		return session.NewRedisStore(cmd.Context(), session.RedisConfig{Addr: redisAddr})
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"unknown session store %q (want memory, file, or redis)", via)
	}
}
