package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/goliatone/go-tagfield/pkg/config"
	"github.com/goliatone/go-tagfield/pkg/editor"
	"github.com/goliatone/go-tagfield/pkg/model"
	"github.com/goliatone/go-tagfield/pkg/orchestrator"
	"github.com/goliatone/go-tagfield/pkg/render"
	"github.com/goliatone/go-tagfield/pkg/renderers/tui"
	"github.com/goliatone/go-tagfield/pkg/renderers/vanilla"
	"github.com/goliatone/go-tagfield/pkg/uischema"
)

func main() {
	input := flag.String("input", "", "HTML page to enhance (stdin if empty)")
	output := flag.String("output", "", "output file (stdout if empty)")
	configPath := flag.String("config", "", "YAML defaults file (embedded defaults if empty)")
	stripMarkup := flag.Bool("strip-markup", false, "strip HTML markup from added tags")
	verbose := flag.Bool("v", false, "log debug details to stderr")
	interactive := flag.Bool("tui", false, "edit a single list in the terminal instead of enhancing HTML")
	name := flag.String("name", "tags", "field name used by -tui")
	value := flag.String("value", "", "initial comma-separated list for -tui")
	minItems := flag.Int("min", -1, "minimum items for -tui (site default if negative)")
	maxItems := flag.Int("max", -1, "maximum items for -tui (site default if negative)")
	format := flag.String("format", string(tui.OutputFormatText), "-tui output format: text, json or form")
	uiSchemaDir := flag.String("ui-schema", "", "directory of UI schema overlays applied in -tui mode")
	formID := flag.String("form", "", "form id looked up in the UI schema overlays")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	defaults := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		defaults = loaded
	}
	if *stripMarkup {
		defaults.StripMarkup = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		result []byte
		err    error
	)
	if *interactive {
		field := model.Field{
			Name:       *name,
			Value:      *value,
			Classes:    []string{defaults.HostClass},
			Attributes: map[string]string{},
		}
		if *minItems >= 0 {
			field.Attributes[editor.AttrMinItems] = strconv.Itoa(*minItems)
		}
		if *maxItems >= 0 {
			field.Attributes[editor.AttrMaxItems] = strconv.Itoa(*maxItems)
		}
		var decorators []model.Decorator
		if *uiSchemaDir != "" {
			store, loadErr := uischema.LoadFS(os.DirFS(*uiSchemaDir))
			if loadErr != nil {
				log.Fatalf("Failed to load UI schema: %v", loadErr)
			}
			decorators = append(decorators, uischema.NewDecorator(store))
		}
		form := model.FormModel{ID: *formID, Fields: []model.Field{field}}
		result, err = runTUI(ctx, defaults, logger, form, tui.OutputFormat(*format), decorators)
	} else {
		result, err = runEnhance(ctx, defaults, logger, *input)
	}
	if err != nil {
		log.Fatalf("Failed to process tag fields: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, result, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
		return
	}
	fmt.Println(string(result))
}

func runEnhance(ctx context.Context, defaults config.Defaults, logger *slog.Logger, input string) ([]byte, error) {
	var src io.Reader = os.Stdin
	if input != "" {
		file, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		src = file
	}

	gen := orchestrator.New(
		orchestrator.WithDefaults(defaults),
		orchestrator.WithLogger(logger),
	)
	var out bytes.Buffer
	summaries, err := gen.Enhance(ctx, src, &out)
	if err != nil {
		return nil, err
	}
	for _, summary := range summaries {
		logger.Info("tag field enhanced",
			"field", summary.Name,
			"value", summary.Value,
			"state", summary.State,
		)
	}
	return out.Bytes(), nil
}

func runTUI(ctx context.Context, defaults config.Defaults, logger *slog.Logger, form model.FormModel, format tui.OutputFormat, decorators []model.Decorator) ([]byte, error) {
	terminal, err := tui.New(
		tui.WithOutputFormat(format),
		tui.WithOutput(os.Stderr),
		tui.WithTheme(tui.Theme{ErrorPrefix: "! "}),
	)
	if err != nil {
		return nil, err
	}
	html, err := vanilla.New()
	if err != nil {
		return nil, err
	}

	registry := render.NewRegistry()
	registry.MustRegister(terminal)
	registry.MustRegister(html)

	gen := orchestrator.New(
		orchestrator.WithDefaults(defaults),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(terminal.Name()),
		orchestrator.WithLogger(logger),
		orchestrator.WithUIDecorators(decorators...),
	)
	return gen.Generate(ctx, orchestrator.Request{Form: form})
}
