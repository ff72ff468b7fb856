package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-choicelist/pkg/choices"
	"github.com/goliatone/go-choicelist/pkg/loader"
	"github.com/goliatone/go-choicelist/pkg/metrics"
	"github.com/goliatone/go-choicelist/pkg/render"
	"github.com/goliatone/go-choicelist/pkg/renderers/tui"
	sourceopenapi "github.com/goliatone/go-choicelist/pkg/source/openapi"
	"github.com/goliatone/go-choicelist/pkg/source/timezones"
	"github.com/goliatone/go-choicelist/pkg/visibility"
)

type contextFlag map[string]any

func (c contextFlag) String() string {
	pairs := make([]string, 0, len(c))
	for key, value := range c {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, value))
	}
	return strings.Join(pairs, ",")
}

func (c contextFlag) Set(raw string) error {
	key, value, ok := strings.Cut(raw, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("expected key=value, got %q", raw)
	}
	c[strings.TrimSpace(key)] = strings.TrimSpace(value)
	return nil
}

type stdLogger struct {
	verbose bool
}

func (l stdLogger) Debug(msg string, args ...any) {
	if l.verbose {
		log.Println(append([]any{"DEBUG", msg}, args...)...)
	}
}
func (l stdLogger) Info(msg string, args ...any) { log.Println(append([]any{"INFO", msg}, args...)...) }
func (l stdLogger) Warn(msg string, args ...any) { log.Println(append([]any{"WARN", msg}, args...)...) }
func (l stdLogger) Error(msg string, args ...any) {
	log.Println(append([]any{"ERROR", msg}, args...)...)
}

func main() {
	dir := flag.String("dir", "", "directory of question documents (bundled samples if empty)")
	data := flag.String("data", "", "directory choicesByUrl payloads are read from (bundled sample data if empty)")
	openapiPath := flag.String("openapi", "", "OpenAPI document to read enum choices from")
	schemaRef := flag.String("schema", "", "schema reference within --openapi (Name or Name.property)")
	design := flag.Bool("design", false, "render in design mode")
	order := flag.String("order", "", "default item order: row or column")
	format := flag.String("format", "text", "output format: text, styled or json")
	interactive := flag.Bool("interactive", false, "prompt for answers instead of printing previews")
	templates := flag.String("templates", "", "directory with template overrides for the text format")
	locale := flag.String("locale", choices.DefaultLocale, "locale used for item texts")
	verbose := flag.Bool("v", false, "log debug diagnostics")
	values := contextFlag{}
	flag.Var(values, "set", "answer visible to visibleIf/enableIf rules, as key=value (repeatable)")
	flag.Parse()

	ctx := context.Background()

	store, err := loadStore(ctx, *dir, *openapiPath, *schemaRef)
	if err != nil {
		log.Fatalf("Failed to load questions: %v", err)
	}

	registry := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(registry)
	if err != nil {
		log.Fatalf("Failed to set up metrics: %v", err)
	}
	opts := []choices.Option{
		choices.WithLogger(stdLogger{verbose: *verbose}),
		choices.WithLocale(*locale),
		choices.WithFetchObserver(collector),
	}
	if raw := strings.TrimSpace(*order); raw != "" {
		parsed, ok := choices.ParseOrder(raw)
		if !ok {
			log.Fatalf("invalid order: %q", raw)
		}
		opts = append(opts, choices.WithSettings(choices.NewSettings(parsed)))
	}
	if *design {
		opts = append(opts, choices.WithMode(choices.ModeDesign))
	}

	questions, err := store.Build(opts...)
	if err != nil {
		log.Fatalf("Failed to build questions: %v", err)
	}
	questions = filterQuestions(questions, flag.Args())
	if len(questions) == 0 {
		log.Fatalf("no questions matched %v", flag.Args())
	}

	fetcher := timezones.NewFetcher(loader.NewFSFetcher(dataFS(*data, *dir)))
	titles := make(map[string]string, len(questions))
	for _, q := range questions {
		q.SetContext(visibilityContext(values))
		if err := q.Refresh(ctx, fetcher); err != nil {
			log.Printf("WARN %s: %v", q.Name(), err)
		}
		if cfg, ok := store.Question(q.Name()); ok {
			titles[q.Name()] = cfg.Title.In(*locale)
		}
	}
	if *verbose {
		logMetrics(registry)
	}

	if *interactive {
		answers, err := tui.New(tui.WithConfirmation(false)).AskAll(ctx, questions, titles)
		if err != nil {
			log.Fatalf("Failed to collect answers: %v", err)
		}
		encoded, err := json.MarshalIndent(answers, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode answers: %v", err)
		}
		fmt.Println(string(encoded))
		return
	}

	renderer, err := pickRenderer(*format, *templates)
	if err != nil {
		log.Fatalf("Failed to set up renderer: %v", err)
	}
	for idx, q := range questions {
		out, err := renderer.Render(ctx, render.BuildView(q, render.WithTitle(titles[q.Name()])))
		if err != nil {
			log.Fatalf("Failed to render %s: %v", q.Name(), err)
		}
		if idx > 0 {
			fmt.Println()
		}
		fmt.Print(string(out))
	}
}

func loadStore(ctx context.Context, dir, openapiPath, schemaRef string) (*loader.Store, error) {
	if strings.TrimSpace(openapiPath) != "" {
		raw, err := os.ReadFile(openapiPath)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", openapiPath, err)
		}
		src, err := sourceopenapi.Load(ctx, raw)
		if err != nil {
			return nil, err
		}
		refs := src.Refs()
		if ref := strings.TrimSpace(schemaRef); ref != "" {
			refs = []string{ref}
		}
		return sourceopenapi.Store(src, refs...)
	}
	if strings.TrimSpace(dir) == "" {
		return loader.LoadFS(loader.SampleFS())
	}
	return loader.LoadFS(os.DirFS(dir))
}

func dataFS(data, dir string) fs.FS {
	switch {
	case strings.TrimSpace(data) != "":
		return os.DirFS(data)
	case strings.TrimSpace(dir) != "":
		return os.DirFS(dir)
	default:
		return loader.SampleDataFS()
	}
}

func filterQuestions(questions []*choices.Question, names []string) []*choices.Question {
	if len(names) == 0 {
		return questions
	}
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[strings.TrimSpace(name)] = struct{}{}
	}
	var out []*choices.Question
	for _, q := range questions {
		if _, ok := wanted[q.Name()]; ok {
			out = append(out, q)
		}
	}
	return out
}

func visibilityContext(values contextFlag) visibility.Context {
	return visibility.Context{Values: map[string]any(values)}
}

func logMetrics(reg prometheus.Gatherer) {
	families, err := reg.Gather()
	if err != nil {
		log.Printf("WARN gather metrics: %v", err)
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, pair := range metric.GetLabel() {
				labels = append(labels, pair.GetName()+"="+pair.GetValue())
			}
			value := metric.GetCounter().GetValue()
			if gauge := metric.GetGauge(); gauge != nil {
				value = gauge.GetValue()
			}
			log.Printf("DEBUG %s{%s} %v", family.GetName(), strings.Join(labels, ","), value)
		}
	}
}

func pickRenderer(format, templates string) (render.Renderer, error) {
	if format == "text" && strings.TrimSpace(templates) != "" {
		return render.NewTextRenderer(render.WithTemplateFS(os.DirFS(templates)))
	}
	registry, err := render.NewDefaultRegistry()
	if err != nil {
		return nil, err
	}
	renderer, err := registry.Get(format)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(registry.List(), ", "))
	}
	return renderer, nil
}
