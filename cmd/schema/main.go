// Command schema writes the JSON schema of bandfeed configuration,
// pkg/config embeds the result to verify loaded configs.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/umputun/bandfeed/pkg/config"
)

type options struct {
	Output string `short:"o" long:"output" default:"schema.json" description:"schema file to write"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := writeSchema(opts.Output); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	fmt.Printf("schema written to %s\n", opts.Output)
}

// writeSchema reflects config.Config and stores the indented schema at path
func writeSchema(path string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // schema file is not sensitive
		return fmt.Errorf("write schema %s: %w", path, err)
	}
	return nil
}
