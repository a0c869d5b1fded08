package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hiveos/go-canonical/pkg/enforcer"
	"github.com/hiveos/go-canonical/pkg/registry"
	"github.com/hiveos/go-canonical/pkg/report"
	"github.com/hiveos/go-canonical/pkg/schemaimport"
	"github.com/hiveos/go-canonical/pkg/tui"
)

func main() {
	entityType := flag.String("type", "", "entity type to enforce (e.g. brand)")
	input := flag.String("input", "", "canonical JSON path")
	alt1 := flag.String("alt", "", "first alternate source JSON path")
	alt2 := flag.String("alt2", "", "second alternate source JSON path")
	specsPath := flag.String("specs", "", "YAML file with additional entity specs")
	schemaPath := flag.String("schema", "", "JSON Schema file defining an additional entity contract")
	schemaType := flag.String("schema-type", "", "entity type for -schema (defaults to the file name stem)")
	output := flag.String("output", "", "write the cleaned canonical JSON here")
	format := flag.String("format", "report", "output format: report or json")
	validateOnly := flag.Bool("validate", false, "run the read-only contract check, no synthesis")
	interactive := flag.Bool("interactive", false, "prompt for missing choices")
	flag.Parse()

	ctx := context.Background()

	specs := registry.Builtin()
	if *specsPath != "" {
		raw, err := os.ReadFile(*specsPath)
		if err != nil {
			log.Fatalf("read specs: %v", err)
		}
		extra, err := registry.ParseEntitySpecs(raw)
		if err != nil {
			log.Fatalf("parse specs: %v", err)
		}
		specs = append(specs, extra...)
	}
	if *schemaPath != "" {
		doc, err := schemaimport.LoadFile(*schemaPath)
		if err != nil {
			log.Fatalf("load schema: %v", err)
		}
		if *schemaType != "" {
			doc.EntityType = *schemaType
		}
		spec, err := schemaimport.EntitySpecFromSchema(doc)
		if err != nil {
			log.Fatalf("import schema: %v", err)
		}
		specs = append(specs, spec)
	}
	reg, err := registry.New(specs...)
	if err != nil {
		log.Fatalf("build registry: %v", err)
	}

	driver := tui.NewSurveyDriver()
	if *entityType == "" && *interactive {
		types := reg.Types()
		idx, err := driver.Select(ctx, tui.SelectConfig{
			Message:  "Entity type",
			Options:  types,
			PageSize: len(types),
		})
		if err != nil {
			log.Fatalf("select entity type: %v", err)
		}
		*entityType = types[idx]
	}
	if *entityType == "" {
		log.Fatal("missing -type (or pass -interactive)")
	}
	if *input == "" {
		log.Fatal("missing -input")
	}

	canonical, err := readObject(*input)
	if err != nil {
		log.Fatalf("read canonical: %v", err)
	}

	enf := enforcer.New(enforcer.Options{Registry: reg})

	if *validateOnly {
		printJSON(enf.Validate(*entityType, canonical))
		return
	}

	var alts []map[string]any
	for _, path := range []string{*alt1, *alt2} {
		if path == "" {
			continue
		}
		alt, err := readObject(path)
		if err != nil {
			log.Fatalf("read alt source: %v", err)
		}
		alts = append(alts, alt)
	}

	result := enf.Enforce(*entityType, canonical, alts...)

	switch *format {
	case "json":
		printJSON(result)
	case "report":
		spec, _ := reg.Get(*entityType)
		renderer, err := report.NewRenderer()
		if err != nil {
			log.Fatalf("build renderer: %v", err)
		}
		if _, err := renderer.Render(spec, result, os.Stdout); err != nil {
			log.Fatalf("render report: %v", err)
		}
	default:
		log.Fatalf("unknown format %q", *format)
	}

	if *output != "" {
		if *interactive {
			if _, err := os.Stat(*output); err == nil {
				overwrite, err := driver.Confirm(ctx, tui.ConfirmConfig{
					Message: fmt.Sprintf("Overwrite %s?", *output),
				})
				if err != nil {
					log.Fatalf("confirm overwrite: %v", err)
				}
				if !overwrite {
					return
				}
			}
		}
		payload, err := json.MarshalIndent(result.Canonical, "", "  ")
		if err != nil {
			log.Fatalf("marshal canonical: %v", err)
		}
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Cleaned canonical written to %s\n", *output)
	}
}

func readObject(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

func printJSON(value any) {
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		log.Fatalf("marshal output: %v", err)
	}
	fmt.Println(string(payload))
}
