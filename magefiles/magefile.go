//go:build mage

// Package main contains Mage build targets for manuscript developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "manuscript"
	cmdPkg  = "./cmd/manuscript"
	// sampleDir holds the manuscript used by the Sample target.
	sampleDir = "testdata/sample"
)

// sampleManuscript exercises every section marker and a placeholder run.
const sampleManuscript = `#제목
"서울" 골목 산책
#본문
원고 내용
이 줄은 편집 지시문이라 지워집니다.
== 본문 시작 ==
오래된 골목에는 이야기가 많다. 한 집 건너 한 집마다 사연이 있고, 그 사연을 듣다 보면 해가 진다! 오늘은 그중 세 곳을 소개한다.
사진: alley-01.jpg
사진: alley-02.jpg
#댓글
저도 지난주에 다녀왔어요. 정말 좋더라고요!
#태그
#서울 #골목 #산책
`

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Sample builds the CLI and reformats a generated sample manuscript.
func Sample() error {
	mg.Deps(Build)

	if err := os.MkdirAll(sampleDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", sampleDir, err)
	}
	in := filepath.Join(sampleDir, "alley.txt")
	if err := os.WriteFile(in, []byte(sampleManuscript), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", in, err)
	}
	return sh.RunV(filepath.Join(binDir, binName), "reformat", "--stdout", in)
}

// Stats prints project metrics: Go production/test LOC.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines walks the directory tree and counts non-blank lines in Go files.
// If testOnly is true, count only _test.go files; otherwise count non-test .go files.
// Directories starting with '_' or '.' are skipped, as the go tool does.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		isTest := strings.HasSuffix(path, "_test.go")
		if testOnly != isTest {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				total++
			}
		}
		return nil
	})
	return total, err
}
