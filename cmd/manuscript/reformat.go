// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/manuscript/internal/batch"
	"github.com/pdiddy/manuscript/internal/reformat"
	"github.com/pdiddy/manuscript/internal/textio"
	"github.com/pdiddy/manuscript/pkg/types"
)

var reformatCmd = &cobra.Command{
	Use:   "reformat [files...]",
	Short: "Reformat manuscript files into publishing layout",
	Long: `Reformat reads each selected manuscript, removes placeholder runs, keeps
the title and tag sections verbatim, rewraps body and comment lines into
paragraphs, and numbers photo references as (사진1), (사진2), ...

Each result is written next to its input as name.ext, name_1.ext,
name_2.ext, ... whichever is free first. Progress is reported every
--progress-every files.

With --stdout a single file (or "-" for standard input) is reformatted and
printed instead of written.`,
	RunE: runReformat,
}

// flagKeys maps reformat flags to their configuration keys.
var flagKeys = map[string]string{
	"body-width":        "reformat.body_width",
	"comment-width":     "reformat.comment_width",
	"min-lines":         "reformat.min_lines",
	"max-lines":         "reformat.max_lines",
	"width-mode":        "reformat.width_mode",
	"encoding":          "batch.encoding",
	"output-dir":        "batch.output_dir",
	"progress-every":    "batch.progress_every",
	"continue-on-error": "batch.continue_on_error",
}

func runReformat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	formatter, err := reformat.New(cfg.Reformat)
	if err != nil {
		return err
	}

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		return reformatToWriter(formatter, cfg.Batch.Encoding, args, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	sel, err := selectionFromFlags(cmd, args)
	if err != nil {
		return err
	}

	if cfg.Batch.OutputDir != "" {
		if err := os.MkdirAll(cfg.Batch.OutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	driver := &batch.Driver{
		Formatter: formatter,
		Config:    cfg.Batch,
		Selection: sel,
		Notifier:  batch.WriterNotifier{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()},
		Logger:    logger,
	}

	result, runErr := driver.Run()

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" && result.Total() > 0 {
		if err := batch.WriteReport(reportPath, result); err != nil {
			return errors.Join(runErr, err)
		}
	}
	if runErr != nil {
		return runErr
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "\nBatch summary: %d reformatted, %d failed (total: %d)\n",
		result.Processed, result.Failed, result.Total())
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed", result.Failed)
	}
	return nil
}

// selectionFromFlags picks the file list source: --from-list or arguments.
func selectionFromFlags(cmd *cobra.Command, args []string) (batch.Selection, error) {
	listPath, _ := cmd.Flags().GetString("from-list")
	if listPath == "" {
		return batch.PathList(args), nil
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("use either file arguments or --from-list, not both")
	}
	return batch.ListFile{Path: listPath, Stdin: cmd.InOrStdin()}, nil
}

// reformatToWriter reformats exactly one input and writes the text to w.
func reformatToWriter(f *reformat.Formatter, encoding string, args []string, stdin io.Reader, w io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("--stdout takes exactly one file (or -), got %d", len(args))
	}

	var text string
	var err error
	if args[0] == "-" {
		text, err = textio.Decode(stdin, encoding)
	} else {
		text, err = textio.ReadFile(args[0], encoding)
	}
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, f.FormatString(text))
	return err
}

func init() {
	def := types.DefaultReformatConfig()
	reformatCmd.Flags().Int("body-width", def.BodyWidth, "maximum line width inside #본문")
	reformatCmd.Flags().Int("comment-width", def.CommentWidth, "maximum line width inside #댓글")
	reformatCmd.Flags().Int("min-lines", def.MinLines, "lines a paragraph needs before it may close")
	reformatCmd.Flags().Int("max-lines", def.MaxLines, "lines that force a paragraph to close")
	reformatCmd.Flags().String("width-mode", string(def.WidthMode), "measure width in runes or cells")
	reformatCmd.Flags().String("encoding", "utf-8", "input encoding: utf-8, euc-kr, or cp949")
	reformatCmd.Flags().String("output-dir", "", "write results here instead of next to each input")
	reformatCmd.Flags().Int("progress-every", types.DefaultProgressEvery, "files per progress notification")
	reformatCmd.Flags().Bool("continue-on-error", false, "report a failed file and keep going")
	reformatCmd.Flags().String("from-list", "", "read input paths from this file, one per line (- for stdin)")
	reformatCmd.Flags().String("report", "", "write a YAML manifest of the batch to this path")
	reformatCmd.Flags().Bool("stdout", false, "print the result for a single input instead of writing a file")

	for flag, key := range flagKeys {
		if err := viper.BindPFlag(key, reformatCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(reformatCmd)
}
