// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Selection provides the ordered list of files the user picked.
type Selection interface {
	Files() ([]string, error)
}

// PathList is a fixed selection, typically the command arguments. Blank
// entries are ignored.
type PathList []string

// Files returns the non-blank paths in order.
func (p PathList) Files() ([]string, error) {
	files := make([]string, 0, len(p))
	for _, path := range p {
		if strings.TrimSpace(path) != "" {
			files = append(files, path)
		}
	}
	return files, nil
}

// ListFile reads one path per line from a list file. Blank lines and lines
// starting with '#' are skipped. Path "-" reads from Stdin.
type ListFile struct {
	Path  string
	Stdin io.Reader
}

// Files reads the list.
func (l ListFile) Files() ([]string, error) {
	if l.Path == "-" {
		stdin := l.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		return readList(stdin)
	}

	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("opening file list %s: %w", l.Path, err)
	}
	defer f.Close()

	files, err := readList(f)
	if err != nil {
		return nil, fmt.Errorf("reading file list %s: %w", l.Path, err)
	}
	return files, nil
}

func readList(r io.Reader) ([]string, error) {
	var files []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		files = append(files, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return files, nil
}
