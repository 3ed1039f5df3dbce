package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formdecode/pkg/decode"
)

func main() {
	input := flag.String("input", "-", "flat submission file (JSON or YAML mapping), '-' for stdin")
	prefix := flag.String("prefix", "root", "bracket-path root name")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for key/value pairs instead of reading a file")
	flag.Parse()

	decoder := decode.New(decode.WithPrefix(*prefix))

	var (
		tree any
		err  error
	)
	if *interactive {
		fields, promptErr := promptFields()
		if promptErr != nil {
			log.Fatalf("Failed to read submission: %v", promptErr)
		}
		tree, err = decoder.Decode(fields)
	} else {
		data, loadErr := loadMapping(*input)
		if loadErr != nil {
			log.Fatalf("Failed to read submission: %v", loadErr)
		}
		tree, err = decoder.DecodeMap(data)
	}
	if err != nil {
		log.Fatalf("Failed to decode submission: %v", err)
	}

	encoded, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	encoded = append(encoded, '\n')

	if *output != "" {
		if err := os.WriteFile(*output, encoded, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Decoded tree written to %s\n", *output)
	} else {
		os.Stdout.Write(encoded)
	}
}

func loadMapping(path string) (map[string]any, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	// YAML is a JSON superset, so one parser covers both input formats.
	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse mapping: %w", err)
	}
	return data, nil
}

func promptFields() ([]decode.Field, error) {
	var fields []decode.Field
	for {
		var key string
		prompt := &survey.Input{
			Message: "Field key (blank to finish):",
			Help:    "Bracket-path keys like root[address][street] nest; anything else is a top-level field.",
		}
		if err := survey.AskOne(prompt, &key); err != nil {
			return nil, err
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return fields, nil
		}

		var value string
		if err := survey.AskOne(&survey.Input{Message: "Value:"}, &value); err != nil {
			return nil, err
		}
		fields = append(fields, decode.Field{Key: key, Value: value})
	}
}
