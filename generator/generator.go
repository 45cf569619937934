// Package generator writes starter .ras files.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GenerateList writes a starter list named name under data/. If the file
// already exists the list is appended to it, so related lists can share
// one file.
func GenerateList(name string) error {
	listTemplate := fmt.Sprintf(`%s-
item_1,"Describe item_1",1,True
item_2,"Describe item_2",2,False
+
`, name)

	if err := os.MkdirAll("data", 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	filename := filepath.Join("data", strings.ToLower(name)+".ras")

	var content string
	if existing, err := os.ReadFile(filename); err == nil {
		content = string(existing) + "\n" + listTemplate
	} else {
		content = fmt.Sprintf("# %s data\n\n", name) + listTemplate
	}

	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write list template: %w", err)
	}

	fmt.Printf("List %s generated at %s\n", name, filename)
	return nil
}
