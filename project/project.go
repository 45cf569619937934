// Package project scaffolds and builds RAS data projects: a raspy.yaml
// config, one or more data directories of .ras files, and a generated
// JSON output directory.
package project

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raspyfmt/raspy/convert"
)

//go:embed templates/*
var templates embed.FS

// Init creates a new RAS project with scaffolding.
func Init(name string) error {
	dirs := []string{
		filepath.Join(name, "data"),
		filepath.Join(name, "generated", "json"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	templateFiles := map[string]string{
		"raspy.yaml":       "templates/raspy.yaml",
		"data/example.ras": "templates/example.ras",
		"README.md":        "templates/README.md",
		".gitignore":       "templates/gitignore",
	}

	for filePath, templatePath := range templateFiles {
		if err := writeTemplateFile(name, filePath, templatePath, name); err != nil {
			return fmt.Errorf("failed to write %s: %w", filePath, err)
		}
	}

	return nil
}

func writeTemplateFile(projectDir, filePath, templatePath, projectName string) error {
	content, err := templates.ReadFile(templatePath)
	if err != nil {
		return err
	}

	contentStr := strings.ReplaceAll(string(content), "{{.ProjectName}}", projectName)

	fullPath := filepath.Join(projectDir, filePath)
	return os.WriteFile(fullPath, []byte(contentStr), 0644)
}

// Build converts every .ras file in the project's data directories to
// JSON under the configured output directory.
func Build() error {
	cfg, err := LoadConfig(ConfigFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	rasFiles, err := FindRASFiles(cfg.DataDirs)
	if err != nil {
		return err
	}

	if len(rasFiles) == 0 {
		fmt.Println("   No .ras files found")
		return nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	for _, file := range rasFiles {
		outPath := filepath.Join(cfg.OutputDir, strings.TrimSuffix(filepath.Base(file), ".ras")+".json")
		fmt.Printf("   Converting %s...\n", file)

		if err := convert.File(file, "json", outPath); err != nil {
			return fmt.Errorf("failed to convert %s: %w", file, err)
		}
	}

	fmt.Printf("Converted %d RAS files\n", len(rasFiles))
	return nil
}

// FindRASFiles walks the given directories and returns every .ras file.
// Directories that do not exist are skipped.
func FindRASFiles(dirs []string) ([]string, error) {
	var files []string
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if strings.HasSuffix(path, ".ras") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
