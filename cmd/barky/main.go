package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"

	"barky/internal/command"
	"barky/internal/config"
	"barky/internal/database/sqlite"
	"barky/internal/github"
	"barky/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// env is what every subcommand needs: configuration, a logger and an open store.
type env struct {
	cfg   *config.AppConfig
	log   logger.Logger
	store *sqlite.Manager
	out   io.Writer
}

func (e *env) registry(onImported func(github.Repo)) command.Registry {
	return command.NewRegistry(command.Deps{
		Store:      e.store,
		Stars:      github.New(e.cfg.GitHub),
		Out:        e.out,
		OnImported: onImported,
	})
}

// run executes one registered command and prints its result.
func (e *env) run(ctx context.Context, reg command.Registry, name string, data command.Data) error {
	res, err := reg[name].Execute(ctx, data)
	if err != nil {
		return err
	}
	command.Print(e.out, res)
	return nil
}

// withEnv opens the SQLite file named by --db (or BARKY_DB_PATH) around fn.
func withEnv(fn func(c *cli.Context, e *env) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg := config.Load()
		if p := c.String("db"); p != "" {
			cfg.SQLite.Path = p
		}

		log, err := logger.New(cfg.Log.Level, cfg.Log.Pretty)
		if err != nil {
			return err
		}
		defer log.Sync()

		store, err := sqlite.Open(c.Context, cfg.SQLite.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		return fn(c, &env{cfg: cfg, log: log, store: store, out: c.App.Writer})
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "barky",
		Usage: "Bookmark manager backed by a local SQLite file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db",
				Usage:   "path to the SQLite database",
				EnvVars: []string{"BARKY_DB_PATH"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Create the bookmarks table",
				Action: withEnv(func(c *cli.Context, e *env) error {
					return e.run(c.Context, e.registry(nil), "init", nil)
				}),
			},
			{
				Name:  "add",
				Usage: "Add a bookmark",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Aliases: []string{"t"}},
					&cli.StringFlag{Name: "url", Aliases: []string{"u"}},
					&cli.StringFlag{Name: "notes", Aliases: []string{"n"}},
				},
				Action: withEnv(func(c *cli.Context, e *env) error {
					return e.run(c.Context, e.registry(nil), "add", setFlags(c, "title", "url", "notes"))
				}),
			},
			{
				Name:  "list",
				Usage: "List bookmarks",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "order-by", Value: "date_added", Usage: "id, title, url or date_added"},
				},
				Action: withEnv(func(c *cli.Context, e *env) error {
					list := command.ListBookmarks{Store: e.store, OrderBy: c.String("order-by")}
					return e.run(c.Context, command.Registry{"list": list}, "list", nil)
				}),
			},
			{
				Name:      "delete",
				Usage:     "Delete a bookmark",
				ArgsUsage: "<id>",
				Action: withEnv(func(c *cli.Context, e *env) error {
					return e.run(c.Context, e.registry(nil), "delete", command.Data{"id": c.Args().First()})
				}),
			},
			{
				Name:      "edit",
				Usage:     "Update fields of a bookmark",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Aliases: []string{"t"}},
					&cli.StringFlag{Name: "url", Aliases: []string{"u"}},
					&cli.StringFlag{Name: "notes", Aliases: []string{"n"}},
				},
				Action: withEnv(func(c *cli.Context, e *env) error {
					data := setFlags(c, "title", "url", "notes")
					data["id"] = c.Args().First()
					return e.run(c.Context, e.registry(nil), "edit", data)
				}),
			},
			{
				Name:      "import-github",
				Usage:     "Import a user's GitHub stars as bookmarks",
				ArgsUsage: "<username>",
				Action: withEnv(func(c *cli.Context, e *env) error {
					bar := progressbar.Default(-1, "Importing")
					defer bar.Finish()

					reg := e.registry(func(github.Repo) { _ = bar.Add(1) })
					return e.run(c.Context, reg, "import", command.Data{"github_username": c.Args().First()})
				}),
			},
			{
				Name:  "export",
				Usage: "Write all bookmarks as YAML",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "file to write (default stdout)"},
				},
				Action: withEnv(func(c *cli.Context, e *env) error {
					w := e.out
					if p := c.String("out"); p != "" {
						f, err := os.Create(p)
						if err != nil {
							return err
						}
						defer f.Close()
						w = f
					}
					exp := command.ExportBookmarks{List: command.ListBookmarks{Store: e.store}, Out: w}
					res, err := exp.Execute(c.Context, nil)
					if err != nil {
						return err
					}
					if w != e.out {
						command.Print(e.out, res)
					}
					return nil
				}),
			},
			{
				Name:  "shell",
				Usage: "Interactive prompt: <command> key=value key=\"quoted value\"",
				Action: withEnv(func(c *cli.Context, e *env) error {
					l := &command.Loop{
						Commands: e.registry(nil),
						In:       os.Stdin,
						Out:      e.out,
						Prompt:   "barky> ",
						Log:      e.log,
					}
					return l.Run(c.Context)
				}),
			},
		},
	}
}

// setFlags copies only the flags the user actually passed, so absent keys stay absent.
func setFlags(c *cli.Context, names ...string) command.Data {
	data := command.Data{}
	for _, n := range names {
		if c.IsSet(n) {
			data[n] = c.String(n)
		}
	}
	return data
}
