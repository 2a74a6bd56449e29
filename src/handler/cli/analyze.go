package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"srcmetrics/src/controller"
	"srcmetrics/src/util"
)

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		outputDir  string
		format     string
		dumpTokens bool
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Measure a source tree",
		Long:  "Lexes every C and C++ file under path and reports metrics per file and per function",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			util.Info("Analyzing %s (timeout: %v)", path, timeout)

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			req := controller.AnalyzeRequest{Path: path}
			if dumpTokens || h.cfg.Analysis.DumpTokens {
				req.Trace = cmd.ErrOrStderr()
			}

			analysisCtrl := controller.NewAnalysisController(h.cfg)
			report, err := analysisCtrl.Analyze(ctx, req)
			if err != nil {
				util.Error("Analysis failed: %v", err)
				return fmt.Errorf("analysis failed: %w", err)
			}

			reportCtrl := controller.NewReportController(h.cfg)
			if outputDir != "" {
				h.cfg.Output.OutputDir = outputDir
				if format != "" {
					h.cfg.Output.Formats = []string{format}
				}

				paths, err := reportCtrl.GenerateReports(report)
				if err != nil {
					return fmt.Errorf("generating reports: %w", err)
				}
				for _, path := range paths {
					fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
				}
			} else {
				outputFormat := format
				if outputFormat == "" {
					outputFormat = "text"
				}

				output, err := reportCtrl.GenerateToString(report, outputFormat, cmd.OutOrStdout())
				if err != nil {
					return fmt.Errorf("generating report: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), output)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "\nAnalysis complete:\n")
			fmt.Fprintf(cmd.ErrOrStderr(), "  Files: %d, functions: %d, lines: %d\n",
				report.Summary.Files, report.Summary.Functions, report.Summary.Lines)
			fmt.Fprintf(cmd.ErrOrStderr(), "  Limit findings: %d\n", len(report.Findings))

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory path")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (text, json, markdown, html, sarif)")
	cmd.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "Write every counted token to stderr")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 5*time.Minute, "Analysis timeout")

	return cmd
}
