package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/mindfuljournal/mindful/internal/cli"
	"github.com/mindfuljournal/mindful/internal/config"
	"github.com/mindfuljournal/mindful/internal/constants"
	"github.com/mindfuljournal/mindful/internal/storage"
	"github.com/mindfuljournal/mindful/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Data file path." type:"path" default:"~/.config/mindful/mindful.db"`

	Init    cli.InitCmd    `cmd:"" help:"Initialize mindful storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add     cli.AddCmd     `cmd:"" help:"Add a reflection."`
	List    cli.ListCmd    `cmd:"" help:"List reflections."`
	Delete  cli.DeleteCmd  `cmd:"" help:"Delete a reflection by ID."`
	Day     cli.DayCmd     `cmd:"" help:"Show one day's reflections, ritual and review."`
	Ritual  struct {
		List   cli.RitualListCmd   `cmd:"" help:"Show the wind-down checklist." default:"1"`
		Toggle cli.RitualToggleCmd `cmd:"" help:"Toggle a checklist item."`
	} `cmd:"" help:"Manage the nightly wind-down ritual."`
	Insight cli.InsightCmd `cmd:"" help:"Generate an AI review of recent entries."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show streak, mood trend and ritual heatmap."`
	Quote   cli.QuoteCmd   `cmd:"" help:"Show the quote of the day."`
	Export  cli.ExportCmd  `cmd:"" help:"Export all data to a JSON backup."`
	Import  cli.ImportCmd  `cmd:"" help:"Merge a JSON backup into the current data."`
	Backup  struct {
		List    cli.BackupListCmd    `cmd:"" help:"List managed backups." default:"1"`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore (merge) a managed backup."`
	} `cmd:"" help:"Manage backup files."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("mindful"),
		kong.Description("Reflective journaling, nightly wind-down ritual and streak tracking"),
		kong.UsageOnError(),
		kong.Vars{"version": "v" + constants.AppVersion},
	)

	cfg := config.Load()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.LogLevel).
		With().Timestamp().Logger()

	// JSON backend for .json paths, SQLite otherwise
	var kv storage.Provider
	if strings.HasSuffix(CLI.Data, ".json") {
		kv = storage.NewJSONStore(CLI.Data)
	} else {
		kv = storage.NewSQLiteStore(CLI.Data)
	}

	appCtx := &cli.Context{
		KV:     kv,
		Store:  store.New(kv, log),
		Config: cfg,
		Log:    log,
	}

	err := ctx.Run(appCtx)
	if cerr := kv.Close(); cerr != nil {
		log.Warn().Err(cerr).Msg("failed to close storage")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
