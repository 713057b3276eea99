package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/babarot/stripname/internal/config"
	"github.com/babarot/stripname/internal/log"
	"github.com/jessevdk/go-flags"
	"github.com/rs/xid"
)

type Option struct {
	DryRun   bool     `short:"n" long:"dry-run" description:"Preview changes without actually renaming"`
	Yes      bool     `short:"y" long:"yes" description:"Skip confirmation prompt"`
	Ext      []string `long:"ext" value-name:"EXT" description:"Only process files with these extensions (can be repeated)"`
	UndoFile string   `long:"undo-file" value-name:"PATH" description:"Path for the undo script (default: auto-generated)"`
	NoUndo   bool     `long:"no-undo" description:"Do not generate an undo script"`
	Config   string   `long:"config" description:"Path to config file" default:""`

	Meta MetaOption `group:"Meta Options"`

	Args struct {
		Root       string   `positional-arg-name:"ROOT" description:"Root directory to rename files and folders in"`
		Substrings []string `positional-arg-name:"SUBSTRING" description:"Substrings to remove from names"`
	} `positional-args:"yes"`
}

type MetaOption struct {
	Version bool `short:"V" long:"version" description:"Show version"`
	Logs    bool `long:"logs" description:"View debug logs"`
}

type CLI struct {
	version Version
	option  Option
	config  config.Config
	runID   string
}

var runID = sync.OnceValue(func() string {
	id := xid.New().String()
	return id
})

func Run(ctx context.Context, v Version) error {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = v.AppName
	parser.Usage = "[OPTIONS] ROOT SUBSTRING..."
	parser.LongDescription = heredoc.Docf(`
		Batch rename files and folders by removing substrings from their names.

		Examples:
		  %[1]s /path/to/folder _old _backup
		      Remove "_old" and "_backup" from all names

		  %[1]s --dry-run /path/to/folder _test
		      Preview changes without renaming anything

		  %[1]s -y --ext .txt --ext .pdf /path/to/folder _draft
		      Only process .txt and .pdf files, no confirmation

		  %[1]s --undo-file restore.sh /path/to/folder _old
		      Save the undo script to restore.sh
	`, v.AppName)
	_, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}

	if err := log.Init(slog.String("run_id", runID())); err != nil {
		slog.Error("log setup failed", "error", err)
	}

	defer slog.Debug("main function finished\n\n\n")
	slog.Debug("main function started",
		"version", v.Version,
		"revision", v.Revision,
		"buildDate", v.BuildDate,
	)

	switch {
	case opt.Meta.Version:
		fmt.Fprint(os.Stdout, v.Print())
		return nil
	case opt.Meta.Logs:
		return log.Follow(os.Stdout)
	}

	if opt.Args.Root == "" || len(opt.Args.Substrings) == 0 {
		return fmt.Errorf("too few arguments: ROOT and at least one SUBSTRING are required")
	}

	cfg, err := config.Parse(opt.Config)
	if err != nil {
		return err
	}

	cli := CLI{
		version: v,
		option:  opt,
		config:  cfg,
		runID:   runID(),
	}

	if err := cli.Rename(ctx); err != nil {
		slog.Error("exit", "error", fmt.Errorf("cli.rename failed: %w", err))
		return err
	}
	return nil
}
