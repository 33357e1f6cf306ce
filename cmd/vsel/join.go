package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vsel/internal/config"
	"github.com/vango-dev/vsel/internal/errors"
	"github.com/vango-dev/vsel/pkg/plan"
	"github.com/vango-dev/vsel/pkg/render"
	"github.com/vango-dev/vsel/pkg/selection"
	"github.com/vango-dev/vsel/pkg/source"
)

type joinOptions struct {
	doc       string
	plan      string
	configDir string
	html      bool
	json      bool
	pretty    bool
}

func joinCmd() *cobra.Command {
	var opts joinOptions

	cmd := &cobra.Command{
		Use:   "join",
		Short: "Run a join plan against a document",
		Long: `Run a join plan against an HTML document and print the update,
enter and exit partitions of the last data step.

The document is a file path, '-' for stdin, or s3://bucket/key.

Examples:
  vsel join --doc page.html --plan bars.json
  vsel join --doc - --plan bars.json --html < page.html
  vsel join --doc s3://pages/index.html --plan bars.json --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runJoin(cmd, opts)
			if err != nil && opts.json {
				fmt.Fprintln(cmd.ErrOrStderr(), errors.FromError(err, "").FormatJSON())
				return printedError{err}
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.doc, "doc", "d", "", "Document path, '-' or s3://bucket/key")
	cmd.Flags().StringVarP(&opts.plan, "plan", "p", "", "Plan file (JSON)")
	cmd.Flags().StringVarP(&opts.configDir, "config", "c", "", "Directory containing vsel.json")
	cmd.Flags().BoolVar(&opts.html, "html", false, "Print the rendered document instead of the summary")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the full report, or the error, as JSON")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent the rendered document")

	return cmd
}

func runJoin(cmd *cobra.Command, opts joinOptions) error {
	if opts.doc == "" {
		return errors.New("E180").
			WithDetail("--doc is required").
			WithSuggestion("Pass a file path, '-' or s3://bucket/key")
	}
	if opts.plan == "" {
		return errors.New("E180").
			WithDetail("--plan is required")
	}

	cfg, err := config.LoadOrDefault(opts.configDir)
	if err != nil {
		return err
	}
	logger := cfg.Logger(cmd.ErrOrStderr())

	loaderOpts := []source.Option{
		source.WithStdin(cmd.InOrStdin()),
		source.WithMaxBytes(cfg.Server.MaxBodyBytes),
		source.WithLogger(logger),
	}
	if strings.HasPrefix(opts.doc, "s3://") {
		client, err := source.NewS3Client(cmd.Context(), cfg.S3)
		if err != nil {
			return err
		}
		loaderOpts = append(loaderOpts, source.WithS3(client))
	}
	doc, err := source.NewLoader(loaderOpts...).Load(cmd.Context(), opts.doc)
	if err != nil {
		return err
	}

	f, err := os.Open(opts.plan)
	if err != nil {
		return errors.New("E140").
			WithDetail("Cannot open plan file " + opts.plan).
			Wrap(err)
	}
	defer f.Close()
	p, err := plan.Read(f, opts.plan)
	if err != nil {
		return err
	}

	report, err := plan.Run(doc, p,
		plan.WithSelectionOptions(selection.WithLogger(logger)),
		plan.WithRenderer(render.RendererConfig{Pretty: opts.pretty}),
	)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch {
	case opts.json:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case opts.html:
		_, err := io.WriteString(w, report.HTML)
		return err
	default:
		printSummary(w, report)
		return nil
	}
}

func printSummary(w io.Writer, report *plan.Report) {
	if report.Update == nil {
		success(w, "%d group(s) selected", len(report.Selection))
		printGroups(w, "selection", report.Selection)
		return
	}
	success(w, "joined %d group(s)", len(report.Update))
	printGroups(w, "update", report.Update)
	printGroups(w, "enter", report.Enter)
	printGroups(w, "exit", report.Exit)
}

func printGroups(w io.Writer, label string, groups [][]*plan.Slot) {
	for gi, group := range groups {
		parts := make([]string, len(group))
		for i, slot := range group {
			parts[i] = formatSlot(slot)
		}
		info(w, "%-6s %d: [%s]", label, gi, strings.Join(parts, ", "))
	}
}

// formatSlot renders a slot as tag#id=datum, +datum for a placeholder or
// "-" when empty.
func formatSlot(slot *plan.Slot) string {
	if slot == nil {
		return "-"
	}
	if slot.Placeholder {
		return "+" + plan.Expand("{d}", slot.Datum, 0)
	}
	s := slot.Tag
	if slot.ID != "" {
		s += "#" + slot.ID
	}
	if slot.Bound {
		s += "=" + plan.Expand("{d}", slot.Datum, 0)
	}
	return s
}
