package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"uiforge/internal/config"
	"uiforge/internal/datatable"
	"uiforge/internal/export"
	"uiforge/internal/logging"
	"uiforge/internal/sample"
	"uiforge/internal/telemetry"
	"uiforge/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// flags holds the parsed command line.
type flags struct {
	configPath string
	dataPath   string
	print      bool
	sort       string
	version    bool
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("uiforge", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "", "path to a TOML config file (default $UIFORGE_CONFIG or ~/.config/uiforge/config.toml)")
	fs.StringVar(&f.dataPath, "data", "", "records to show: a .json array of objects or a .toml file of [[record]] tables")
	fs.BoolVar(&f.print, "print", false, "print the table to stdout and exit")
	fs.StringVar(&f.sort, "sort", "", "initial sort as key[:asc|desc]")
	fs.BoolVar(&f.version, "version", false, "print the version and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: uiforge [flags]\n\n")
		fmt.Fprintf(fs.Output(), "uiforge is a terminal showcase for input fields and sortable,\n")
		fmt.Fprintf(fs.Output(), "selectable data tables.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	return f, nil
}

// parseSort reads "key", "key:asc" or "key:desc". An empty string means unsorted.
func parseSort(s string) (datatable.SortState, error) {
	if s == "" {
		return datatable.SortState{}, nil
	}
	key, dir, found := strings.Cut(s, ":")
	if key == "" {
		return datatable.SortState{}, fmt.Errorf("sort %q: missing column key", s)
	}
	if !found {
		return datatable.SortState{Column: key, Direction: datatable.Ascending}, nil
	}
	d, err := datatable.ParseDirection(dir)
	if err != nil {
		return datatable.SortState{}, fmt.Errorf("sort %q: %w", s, err)
	}
	return datatable.SortState{Column: key, Direction: d}, nil
}

// loadRecords returns the data file's records with matching columns, or the
// sample users when path is empty.
func loadRecords(path string) ([]datatable.Record, datatable.Columns, error) {
	if path == "" {
		return sample.Users(), sample.UserColumns(), nil
	}
	records, err := sample.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return records, sample.ColumnsFor(records), nil
}

func applySort(t *datatable.Table, state datatable.SortState) error {
	if !state.Active() {
		return nil
	}
	if !t.SetSort(state) {
		return fmt.Errorf("sort: column %q does not exist or is not sortable", state.Column)
	}
	return nil
}

func run(f flags, stdout io.Writer) error {
	if f.version {
		_, err := fmt.Fprintf(stdout, "uiforge %s\n", version)
		return err
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	locale, _ := cfg.Locale()
	policy, _ := cfg.Policy()

	dataPath := f.dataPath
	if dataPath == "" {
		dataPath = cfg.Demo.DataFile
	}
	records, columns, err := loadRecords(dataPath)
	if err != nil {
		return err
	}
	if err := columns.Validate(); err != nil {
		return fmt.Errorf("columns: %w", err)
	}
	sortState, err := parseSort(f.sort)
	if err != nil {
		return err
	}

	if f.print {
		t := datatable.New(datatable.Config{
			Records:      records,
			Columns:      columns,
			EmptyMessage: cfg.Table.EmptyMessage,
			Locale:       locale,
		})
		if err := applySort(t, sortState); err != nil {
			return err
		}
		return export.Write(stdout, t)
	}

	logger, err := logging.New(logging.Options{File: cfg.Log.File, Debug: cfg.Log.Debug})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	rec, err := telemetry.New(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rec.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown failed", zap.Error(err))
		}
	}()

	ui.ApplyTheme(ui.Theme{
		Accent:    cfg.Theme.Accent,
		Highlight: cfg.Theme.Highlight,
		Muted:     cfg.Theme.Muted,
	})

	m := ui.NewAppModel(ui.Options{
		Records:      records,
		Columns:      columns,
		EmptyMessage: cfg.Table.EmptyMessage,
		Locale:       locale,
		Policy:       policy,
		LoadingDelay: cfg.Demo.LoadingDelay,
		Logger:       logger,
		Telemetry:    rec,
	})
	for _, tv := range []*ui.TableView{m.Tables.Basic, m.Tables.Selectable} {
		if err := applySort(tv.Table, sortState); err != nil {
			return err
		}
	}

	logger.Info("starting",
		zap.String("version", version),
		zap.Int("records", len(records)),
		zap.Bool("telemetry", rec.Enabled()),
	)
	p := tea.NewProgram(m.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if err := run(f, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "uiforge: %v\n", err)
		os.Exit(1)
	}
}
