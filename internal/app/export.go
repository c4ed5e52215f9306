package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/five82/tutordesk/internal/export"
	"github.com/five82/tutordesk/internal/tutorials"
)

// ExportOptions configure a one-shot export of the tutorial list.
type ExportOptions struct {
	ConfigPath    string
	APIURL        string
	Format        string
	PublishedOnly bool
	Title         string
	Output        string // empty or "-" writes to stdout
}

// Export fetches the list once and writes it to the requested output.
func Export(ctx context.Context, opts ExportOptions, stdout io.Writer) error {
	cfg, err := loadConfig(opts.ConfigPath, opts.APIURL)
	if err != nil {
		return err
	}
	client, err := tutorials.NewClient(cfg.APIURL, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init tutorials client: %w", err)
	}
	return exportList(ctx, client, opts, stdout)
}

func exportList(ctx context.Context, svc tutorials.Service, opts ExportOptions, stdout io.Writer) error {
	query := tutorials.Query{Title: opts.Title, PublishedOnly: opts.PublishedOnly}
	list, err := svc.List(ctx, query)
	if err != nil {
		return fmt.Errorf("list tutorials (%s): %w", query.Label(), err)
	}

	if opts.Output == "" || opts.Output == "-" {
		return export.Write(stdout, opts.Format, list)
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.Output, err)
	}
	if err := export.Write(f, opts.Format, list); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
