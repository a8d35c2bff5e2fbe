// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// UniqueFilename returns filename if nothing named that exists in dir,
// otherwise the first free name of the form base_1.ext, base_2.ext, ...
func UniqueFilename(dir, filename string) string {
	base, ext := splitExt(filename)
	candidate := filename
	for counter := 1; exists(filepath.Join(dir, candidate)); counter++ {
		candidate = fmt.Sprintf("%s_%d%s", base, counter, ext)
	}
	return candidate
}

// splitExt splits name into base and extension. Leading dots belong to the
// base, so ".profile" has no extension.
func splitExt(name string) (base, ext string) {
	ext = filepath.Ext(name)
	base = strings.TrimSuffix(name, ext)
	if strings.Trim(base, ".") == "" {
		return name, ""
	}
	return base, ext
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
