package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/markup"
)

func main() {
	root := "testdata"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, ".mu") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no markup files found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		var out bytes.Buffer
		if _, err := markup.Render(markup.RenderRequest{
			Reader: bytes.NewReader(src),
			Writer: &out,
		}); err != nil {
			fatalf("render %s: %s", path, markup.FormatError(src, err, 0))
		}
		dst := goldenPath(path)
		if err := os.WriteFile(dst, out.Bytes(), 0o644); err != nil {
			fatalf("write %s: %v", dst, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", dst)
	}
}

func goldenPath(muPath string) string {
	return strings.TrimSuffix(muPath, ".mu") + ".html"
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
