package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	formdecode "github.com/goliatone/go-formdecode"
	pkgopenapi "github.com/goliatone/go-formdecode/pkg/openapi"
	"github.com/goliatone/go-formdecode/pkg/variant"
)

func main() {
	source := flag.String("source", "openapi.json", "OpenAPI document path or URL")
	variants := flag.String("variants", "", "comma-separated variant tags to augment")
	discriminator := flag.String("discriminator", "_type", "discriminator property name")
	title := flag.String("title", "", "title for the injected property")
	allowMissing := flag.Bool("allow-missing", false, "skip tags without a component schema")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	registry := variant.NewRegistry()
	for _, tag := range strings.Split(*variants, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if err := registry.Register(variant.StaticSchema{Name: tag}); err != nil {
			log.Fatalf("Failed to register variant: %v", err)
		}
	}
	if registry.Len() == 0 {
		log.Fatalf("No variants supplied; use -variants Tag1,Tag2")
	}

	ctx := context.Background()

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid source: %q", *source)
	}

	augmented, err := formdecode.AugmentSource(ctx, src, registry, pkgopenapi.AugmentOptions{
		DiscriminatorKey: *discriminator,
		Title:            *title,
		AllowMissing:     *allowMissing,
	}, pkgopenapi.WithHTTPFallback(30*time.Second))
	if err != nil {
		log.Fatalf("Failed to augment document: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, augmented, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Augmented document written to %s\n", *output)
	} else {
		fmt.Println(string(augmented))
	}
}

func parseSource(raw string) pkgopenapi.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgopenapi.SourceFromURL(path)
	}
	return pkgopenapi.SourceFromFile(path)
}
