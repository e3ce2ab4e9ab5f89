package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tianyaxiang/neurapress-sub000/internal/fileutil"
)

// FileToRender represents a single file to process.
type FileToRender struct {
	InputPath  string
	OutputPath string
}

// discoverFiles expands inputs (files or directories) into files to render.
// Directories are walked recursively and their layout is mirrored under outputDir.
func discoverFiles(inputs []string, outputDir string) ([]FileToRender, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}

	var files []FileToRender
	for _, input := range inputs {
		found, err := discoverInput(input, outputDir)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	if len(files) > 1 && isHTMLPath(outputDir) {
		return nil, fmt.Errorf("%w: output %s is a single file but %d inputs were found", ErrUsage, outputDir, len(files))
	}
	return files, nil
}

// discoverInput finds the markdown files for one input path.
func discoverInput(inputPath, outputDir string) ([]FileToRender, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToRender{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToRender
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || validateMarkdownExtension(path) != nil {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToRender{InputPath: path, OutputPath: outPath})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}
	return files, nil
}

// resolveOutputPath determines the HTML output path for a markdown file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	if isHTMLPath(outputDir) {
		return outputDir
	}

	if outputDir != "" && baseInputDir != "" {
		if rel, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return fileutil.OutputPath(inputPath, filepath.Join(outputDir, filepath.Dir(rel)), "html")
		}
	}

	return fileutil.OutputPath(inputPath, outputDir, "html")
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// isHTMLPath reports whether path names an HTML file rather than a directory.
func isHTMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".html" || ext == ".htm"
}
