package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tabular/internal/config"
	"tabular/internal/export"
	"tabular/internal/filter"
	"tabular/internal/grid"
	"tabular/internal/persist"
	"tabular/internal/source"
	"tabular/internal/ui"
	"tabular/internal/util/logx"
	"tabular/internal/version"
)

func main() {
	logx.SetLevelFromEnv()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Println("tabular", version.String())
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		logx.Errorf("tabular exited with error: %v", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}
	logx.Infof("starting tabular %s: %s (%d rows, %d columns)", version.String(), cfg.String(), len(ds.Records), len(ds.Header))

	ctrl := grid.NewController(ds.Columns(),
		grid.WithRowID[source.Record](ds.RowID),
		grid.WithPageSize[source.Record](cfg.PageSize),
		grid.WithExprCompiler[source.Record](exprCompiler),
	)
	ctrl.SetData(ds.Records)

	if cfg.StatePath != "" {
		if st, ok, _ := persist.Load(cfg.StatePath); ok {
			if err := ctrl.Restore(st.ToGrid()); err != nil {
				logx.Warnf("state: restore failed, starting fresh: %v", err)
			} else {
				logx.Infof("state: restored from %s", cfg.StatePath)
			}
		}
	}
	if cfg.Expr != "" {
		if err := ctrl.SetExpression(cfg.Expr); err != nil {
			return fmt.Errorf("--expr: %w", err)
		}
	}

	if cfg.ExportOut != "" {
		scope := export.Scope(cfg.ExportScope)
		if scope != export.ScopeSelected {
			scope = export.ScopeAllVisible
		}
		if err := export.ToFile(cfg.ExportOut, ctrl, scope); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		view := ctrl.View()
		fmt.Printf("wrote %d of %d rows to %s\n", view.FilteredCount, view.TotalCount, cfg.ExportOut)
		return nil
	}

	if err := ui.Run(ctx, cfg, ds, ctrl); err != nil {
		return err
	}
	if cfg.StatePath != "" {
		if err := persist.Save(cfg.StatePath, persist.FromGrid(ctrl.State())); err != nil {
			logx.Warnf("state: save failed: %v", err)
		}
	}
	return nil
}

func loadDataset(cfg *config.Config) (*source.Dataset, error) {
	switch {
	case cfg.SQLitePath != "":
		return source.LoadSQLite(cfg.SQLitePath, cfg.SQLiteTab, cfg.IDColumn)
	case cfg.UseStdin:
		return source.LoadCSVStdin(cfg.IDColumn)
	default:
		return source.LoadCSVFile(cfg.FilePath, cfg.IDColumn)
	}
}

func exprCompiler(src string) (grid.ExprMatcher, error) {
	ev, err := filter.Compile(src)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, nil
	}
	return ev, nil
}
