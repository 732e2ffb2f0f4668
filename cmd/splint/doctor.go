package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/aretw0/splint"
	"github.com/aretw0/splint/internal/logging"
	"github.com/aretw0/splint/internal/presentation/report"
	"github.com/aretw0/splint/internal/presentation/tui"
	"github.com/aretw0/splint/pkg/adapters/file"
	"github.com/aretw0/splint/pkg/adapters/loamdoc"
	"github.com/aretw0/splint/pkg/adapters/memlib"
	"github.com/aretw0/splint/pkg/domain"
	"github.com/aretw0/splint/pkg/modules"
	"github.com/aretw0/splint/pkg/ports"
	"github.com/aretw0/splint/pkg/registry"
	"github.com/aretw0/splint/pkg/schema"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor [document]",
	Short: "Load a config document under the compatibility patches and report",
	Long: `Doctor spins up the bundled in-memory library, installs every patch, then
loads the given config document through the patched bindings. The report shows
which patches applied and which fields only survived thanks to a fallback.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "config.json"
		if len(args) > 0 {
			path = args[0]
		}
		debug, _ := cmd.Flags().GetBool("debug")
		useLoam, _ := cmd.Flags().GetBool("loam")

		if err := runDoctor(path, useLoam, debug); err != nil {
			fmt.Printf("Doctor failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	doctorCmd.Flags().Bool("loam", false, "Read the document through a Loam repository rooted at its directory")
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(path string, useLoam, debug bool) error {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	logger := logging.Named(logging.New(level), "doctor")

	if term.IsTerminal(int(os.Stdout.Fd())) {
		tui.PrintBanner(splint.Version)
	}

	var docs ports.DocumentSource
	if useLoam {
		src, err := loamdoc.New(filepath.Dir(path))
		if err != nil {
			return err
		}
		docs = src
	} else {
		docs = file.New()
	}

	bindings := registry.New()
	resolver := modules.NewResolver(bindings, logger)
	store := memlib.NewCheckpointStore()
	if err := memlib.RegisterAll(resolver, docs, store); err != nil {
		return err
	}
	// The checkpoint module stays unloaded so the report exercises the
	// deferred path; everything the doctor needs loads eagerly.
	for _, name := range []string{"typesys", "fields", "config"} {
		if _, err := resolver.Load(name); err != nil {
			return err
		}
	}

	rep := &report.Report{Document: path}
	var fallbacks []*domain.FallbackEvent
	hooks := domain.Hooks{
		OnPatchApplied: func(e *domain.PatchEvent) { rep.Patches = append(rep.Patches, e.PatchID) },
		OnPatchSkipped: func(e *domain.PatchEvent) { rep.Skipped = append(rep.Skipped, e.PatchID) },
		OnDeferred:     func(e *domain.PatchEvent) { rep.Deferred = append(rep.Deferred, e.Target.String()) },
		OnFallback:     func(e *domain.FallbackEvent) { fallbacks = append(fallbacks, e) },
	}

	shim := splint.New(resolver,
		splint.WithLogger(logger),
		splint.WithHooks(hooks),
		splint.WithDocumentSource(docs),
	)
	if err := shim.Apply(); err != nil {
		return err
	}

	loaderAny, ok := bindings.Resolve(domain.TargetLoadConfig.String())
	if !ok {
		return fmt.Errorf("no %s binding", domain.TargetLoadConfig)
	}
	loader := loaderAny.(ports.ConfigLoader)
	_, loadErr := loader.Load(path)
	rep.LoadErr = loadErr

	if loadErr == nil {
		fields, err := inspectFields(docs, bindings, path, &fallbacks)
		if err != nil {
			return err
		}
		rep.Fields = fields
	}

	out := rep.Markdown()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width = 0
		}
		render := tui.NewRenderer(width)
		if rendered, err := render(out); err == nil {
			out = rendered
		}
	}
	fmt.Print(out)

	if !rep.Healthy() {
		return fmt.Errorf("document %s does not load cleanly", path)
	}
	return nil
}

// inspectFields runs every document field through the patched deserializer
// one at a time, so fallback events can be attributed to a field.
func inspectFields(docs ports.DocumentSource, bindings *registry.Bindings, path string, fallbacks *[]*domain.FallbackEvent) ([]report.Field, error) {
	doc, err := docs.GetDocument(path)
	if err != nil {
		return nil, err
	}
	deserAny, ok := bindings.Resolve(domain.TargetDeserialize.String())
	if !ok {
		return nil, fmt.Errorf("no %s binding", domain.TargetDeserialize)
	}
	deser := deserAny.(ports.FieldDeserializer)
	decls := memlib.DefaultDeclarations()

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var fields []report.Field
	for _, key := range keys {
		declared, known := decls[key]
		if !known {
			fields = append(fields, report.Field{
				Name:     key,
				Declared: "-",
				Status:   report.StatusOK,
				Detail:   "undeclared, stored as-is",
			})
			continue
		}

		before := len(*fallbacks)
		_, err := deser.Deserialize(doc[key], declared)
		f := report.Field{Name: key, Declared: declName(declared), Status: report.StatusOK}
		switch {
		case err != nil:
			f.Status = report.StatusError
			f.Detail = err.Error()
		case len(*fallbacks) > before:
			f.Status = report.StatusFallback
			f.Detail = (*fallbacks)[len(*fallbacks)-1].Reason
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func declName(declared any) string {
	switch d := declared.(type) {
	case schema.Type:
		return d.Name()
	case string:
		return d
	default:
		return fmt.Sprintf("%T", d)
	}
}
