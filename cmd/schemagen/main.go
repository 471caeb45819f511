package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diwise/project-attributes/pkg/schedule/schema"
)

// schemagen writes one zz_<kind>_accessors.go file per entity kind, with a typed getter for
// every attribute in the schema table of that kind.
func main() {
	var outputDir string
	flag.StringVar(&outputDir, "out", ".", "directory to write the generated files to")
	flag.Parse()

	for _, kind := range schema.Kinds() {
		src, err := Generate(schema.For(kind))
		if err != nil {
			fmt.Fprintf(os.Stderr, "schemagen: %s: %s\n", kind, err.Error())
			os.Exit(1)
		}

		path := filepath.Join(outputDir, fmt.Sprintf("zz_%s_accessors.go", kind))
		if err = os.WriteFile(path, src, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "schemagen: %s\n", err.Error())
			os.Exit(1)
		}
	}
}
