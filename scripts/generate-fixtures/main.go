package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func main() {
	const outputDir = "examples/fixtures"

	forms := testsupport.ProblematicForms()
	forms["comprehensive"] = testsupport.ComprehensiveForm()
	forms["all-types"] = testsupport.AllTypesForm()

	names := make([]string, 0, len(forms))
	for name := range forms {
		names = append(names, name)
	}
	sort.Strings(names)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create %s: %v\n", outputDir, err)
		os.Exit(1)
	}
	for _, name := range names {
		data, err := model.MarshalIndent(forms[name])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode %s: %v\n", name, err)
			os.Exit(1)
		}
		path := filepath.Join(outputDir, name+".json")
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%d bytes)\n", path, len(data))
	}
}
