package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type Config struct {
	FilePath   string
	UseStdin   bool
	Follow     bool
	SQLitePath string
	SQLiteTab  string
	IDColumn   string

	PageSize  int
	Overscan  int
	RowExtent int
	MaxBuffer int

	Theme     Theme
	StatePath string
	Expr      string

	ExportOut   string
	ExportScope string

	ShowVersion bool

	// Internal
	IsPipedStdin bool
}

func Load() (*Config, error) {
	cfg := &Config{}

	// Detect if stdin is piped
	fi, _ := os.Stdin.Stat()
	cfg.IsPipedStdin = (fi.Mode() & os.ModeCharDevice) == 0

	fs := flag.NewFlagSet("tabular", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.FilePath, "file", "", "path to CSV file")
	fs.BoolVar(&cfg.UseStdin, "stdin", false, "read CSV from stdin (default: auto if piped)")
	fs.BoolVar(&cfg.Follow, "follow", false, "follow the CSV file for appended rows (tail -f)")
	fs.StringVar(&cfg.SQLitePath, "sqlite", "", "path to SQLite database")
	fs.StringVar(&cfg.SQLiteTab, "table", "", "table to load from the SQLite database")
	fs.StringVar(&cfg.IDColumn, "id-column", getenvDefault("TABULAR_ID_COLUMN", ""), "column holding a stable row identity (default: row ordinal)")
	fs.IntVar(&cfg.PageSize, "page-size", getenvDefaultInt("TABULAR_PAGE_SIZE", 50), "rows per page")
	fs.IntVar(&cfg.Overscan, "overscan", 5, "extra rows to materialize beyond the visible window")
	fs.IntVar(&cfg.RowExtent, "row-extent", 1, "row height in viewport units")
	fs.IntVar(&cfg.MaxBuffer, "max-buffer", 100000, "bounded row buffer in follow mode (min 1000)")
	theme := string(ThemeDark)
	fs.StringVar(&theme, "theme", getenvDefault("TABULAR_THEME", string(ThemeDark)), "theme: dark|light")
	fs.StringVar(&cfg.StatePath, "state", "", "path to a TOML file for saving/restoring sort, filter, and page state")
	fs.StringVar(&cfg.Expr, "expr", "", "initial filter expression, e.g. 'amount > 100'")
	fs.StringVar(&cfg.ExportOut, "export", "", "headless mode: write the view as CSV to this path and exit")
	fs.StringVar(&cfg.ExportScope, "export-scope", "all-visible", "export scope: all-visible|selected")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}
	cfg.Theme = Theme(theme)

	if cfg.SQLitePath != "" && cfg.SQLiteTab == "" {
		return nil, errors.New("--sqlite requires --table")
	}
	if cfg.Follow && cfg.FilePath == "" {
		return nil, errors.New("--follow requires --file")
	}

	// Determine input source defaults
	if cfg.UseStdin || (cfg.IsPipedStdin && cfg.FilePath == "" && cfg.SQLitePath == "") {
		cfg.UseStdin = true
	}
	if !cfg.UseStdin && cfg.FilePath == "" && cfg.SQLitePath == "" {
		return nil, errors.New("no input: pass --file, --sqlite, or pipe CSV on stdin")
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = 50
	}
	if cfg.MaxBuffer < 1000 {
		cfg.MaxBuffer = 1000
	}

	return cfg, nil
}

func getenvDefault(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvDefaultInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func (c *Config) String() string {
	return fmt.Sprintf("file=%s stdin=%v follow=%v sqlite=%s table=%s theme=%s", c.FilePath, c.UseStdin, c.Follow, c.SQLitePath, c.SQLiteTab, c.Theme)
}
