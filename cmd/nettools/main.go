// Command nettools runs the log and workbook conversions offline, without
// the HTTP server.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bgeun31/nettools/internal/core"
	"github.com/bgeun31/nettools/internal/extract"
	"github.com/bgeun31/nettools/internal/lldp"
	"github.com/bgeun31/nettools/internal/logging"
	"github.com/spf13/cobra"
)

type options struct {
	output   string
	pretty   bool
	patterns string
	logLevel string
	workers  int

	service *core.Service
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "nettools",
		Short:        "Turn network device logs and workbooks into structured data",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.output, "output", "o", "", "Write an .xlsx export to this path instead of JSON to stdout")
	pf.BoolVar(&opts.pretty, "pretty", false, "Pretty-print JSON output")
	pf.StringVar(&opts.patterns, "patterns", os.Getenv("PATTERNS_FILE"), "YAML rule file overriding field patterns")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.IntVar(&opts.workers, "workers", lldp.DefaultWorkers, "Parallel document workers")

	root.AddCommand(newExtractCmd(opts), newLLDPCmd(opts), newCompareCmd(opts))
	return root
}

// setup builds the service once flags are parsed. Logs go to stderr so
// stdout stays valid JSON.
func (o *options) setup(stderr io.Writer) error {
	logger := logging.New(stderr, o.logLevel, "text")
	slog.SetDefault(logger)

	cfg := core.ServiceConfig{Workers: o.workers}
	if o.patterns != "" {
		rf, err := extract.LoadRuleFile(o.patterns)
		if err != nil {
			return err
		}
		if cfg.Patterns, err = rf.PatternSet(); err != nil {
			return err
		}
		noise := lldp.NoiseFilterFromRules(rf.Noise)
		cfg.Noise = &noise
		logger.Debug("patterns loaded", "path", o.patterns)
	}
	o.service = core.NewService(cfg)
	return nil
}

func newExtractCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <files...>",
		Short: "Extract hostname, IP, serial, model and image from device logs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := readFiles(args)
			if err != nil {
				return err
			}
			res, err := opts.service.Devices(cmd.Context(), files)
			if err != nil {
				return err
			}
			return opts.emit(cmd, res.Items(), res.Workbook)
		},
	}
}

func newLLDPCmd(opts *options) *cobra.Command {
	var (
		req    core.LLDPRequest
		oui    bool
		prefix string
	)
	cmd := &cobra.Command{
		Use:   "lldp <files...>",
		Short: "Build the LLDP adjacency table of a set of device logs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := readFiles(args)
			if err != nil {
				return err
			}
			req.Files = files
			req.OUIs = strings.ReplaceAll(req.OUIs, ",", "\n")
			req.Mode = core.LLDPHostname
			if oui || req.OUIs != "" {
				req.Mode = core.LLDPOUI
			}
			req.StripPrefix = prefix
			if req.Mode == core.LLDPOUI && !cmd.Flags().Changed("strip-prefix") {
				req.StripPrefix = core.DefaultOUIStripPrefix
			}

			res, err := opts.service.LLDP(cmd.Context(), req)
			if err != nil {
				return err
			}
			return opts.emit(cmd, res, res.Workbook)
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Patterns, "pattern", "", `Neighbor name patterns, comma separated ("*" matches anything)`)
	f.StringVar(&prefix, "strip-prefix", "", "Prefix removed from device names (OUI mode default "+core.DefaultOUIStripPrefix+")")
	f.BoolVar(&oui, "oui-mode", false, "Admit neighbors by MAC vendor prefix instead of name")
	f.StringVar(&req.OUIs, "oui", "", "Allowed vendor prefixes, comma or newline separated (implies --oui-mode)")
	f.BoolVar(&req.AutoDetect, "auto-detect", true, "Harvest vendor prefixes from each log when --oui is empty")
	return cmd
}

func newCompareCmd(opts *options) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "compare <book.xlsx>",
		Short: "Diff the labelled tables of a workbook's sheets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := core.ParseCompareMode(mode)
			if err != nil {
				return err
			}
			files, err := readFiles(args)
			if err != nil {
				return err
			}
			res, err := opts.service.Compare(cmd.Context(), files[0], m)
			if err != nil {
				return err
			}
			return opts.emit(cmd, res.Records, res.Workbook)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(core.CompareCross), "Compare mode: cross or symmetry")
	return cmd
}

func readFiles(paths []string) ([]core.File, error) {
	files := make([]core.File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		files = append(files, core.File{Name: filepath.Base(p), Data: data})
	}
	return files, nil
}

// emit writes v as JSON to stdout, or the export to --output.
func (o *options) emit(cmd *cobra.Command, v any, export func() (*core.Output, error)) error {
	if o.output != "" {
		out, err := export()
		if err != nil {
			return err
		}
		if err := os.WriteFile(o.output, out.Data, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if o.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
