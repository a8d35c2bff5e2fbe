// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch drives the reformat pipeline over a selection of files.
// Each file is read, reformatted, and written to a collision-free name
// before the next one starts.
package batch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/pdiddy/manuscript/internal/reformat"
	"github.com/pdiddy/manuscript/internal/textio"
	"github.com/pdiddy/manuscript/pkg/types"
)

// ErrEmptySelection is returned when no files were selected.
var ErrEmptySelection = errors.New("no files selected")

// Messages shown to the manuscript desk.
const (
	msgEmptySelection = "파일을 선택해주세요."
	msgProgress       = "파일 처리 완료! (총 %d개 중 %d개 처리)\n저장된 파일들:\n%s"
)

// Driver is the application context for one batch run. It holds the
// pipeline and the collaborators that supply files and receive
// notifications.
type Driver struct {
	Formatter *reformat.Formatter
	Config    types.BatchConfig
	Selection Selection
	Notifier  Notifier
	Logger    *slog.Logger
}

// Run reformats every selected file. Progress is reported every
// Config.ProgressEvery files and once more for the remainder. Unless
// Config.ContinueOnError is set, the first failure stops the batch and is
// returned.
func (d *Driver) Run() (types.BatchResult, error) {
	var result types.BatchResult

	paths, err := d.Selection.Files()
	if err != nil {
		return result, fmt.Errorf("reading selection: %w", err)
	}
	if len(paths) == 0 {
		d.Notifier.Error(TitleError, msgEmptySelection)
		return result, ErrEmptySelection
	}

	every := d.Config.ProgressEvery
	if every <= 0 {
		every = types.DefaultProgressEvery
	}

	var saved []string
	for _, path := range paths {
		fr, err := d.ProcessFile(path)
		if err != nil {
			if !d.Config.ContinueOnError {
				return result, err
			}
			fr.Error = err.Error()
			result.Failed++
			d.Notifier.Error(TitleError, err.Error())
		} else {
			result.Processed++
			saved = append(saved, fr.Output)
		}
		result.Files = append(result.Files, fr)

		if result.Total()%every == 0 && len(saved) > 0 {
			d.notifyProgress(len(paths), result.Total(), saved)
			saved = nil
		}
	}
	if len(saved) > 0 {
		d.notifyProgress(len(paths), result.Total(), saved)
	}
	return result, nil
}

// ProcessFile reformats one file and writes the copy next to it, or into
// Config.OutputDir when set.
func (d *Driver) ProcessFile(path string) (types.FileResult, error) {
	fr := types.FileResult{Input: path}
	log := d.logger().With("file", path)

	dir := d.Config.OutputDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	out := filepath.Join(dir, UniqueFilename(dir, filepath.Base(path)))

	text, err := textio.ReadFile(path, d.Config.Encoding)
	if err != nil {
		return fr, err
	}

	res := d.Formatter.Format(text)
	if err := textio.WriteFile(out, res.Text()); err != nil {
		return fr, err
	}

	fr.Output = out
	fr.Photos = res.Photos
	log.Debug("reformatted", "output", out, "entries", len(res.Entries), "photos", res.Photos)
	return fr, nil
}

func (d *Driver) notifyProgress(total, done int, saved []string) {
	d.Notifier.Info(TitleSuccess, fmt.Sprintf(msgProgress, total, done, strings.Join(saved, "\n")+"\n"))
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d.Logger
}
