package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/handiism/bulktag/internal/batch"
	"github.com/handiism/bulktag/internal/config"
	"github.com/handiism/bulktag/internal/history"
	"github.com/handiism/bulktag/internal/model"
	"github.com/handiism/bulktag/internal/preset"
	"github.com/handiism/bulktag/internal/scan"
	"github.com/handiism/bulktag/internal/store"
)

func main() {
	// Command line flags
	var (
		dirFlag         = flag.String("dir", "", "Folder to scan for audio files")
		configFlag      = flag.String("config", "", "Path to config file")
		presetFlag      = flag.String("preset", "", "Name of the preset to apply")
		listPresetsFlag = flag.Bool("list-presets", false, "List available presets and exit")
		previewFlag     = flag.Bool("preview", false, "Show would-be changes without saving")
		verboseFlag     = flag.Bool("verbose", false, "Show verbose output")
		cleanTagsFlag   = flag.Bool("clean-tags", false, "Trim and deduplicate comment tag lists")
		resizeArtFlag   = flag.Bool("resize-art", false, "Downscale oversized embedded cover art")
	)

	renames := map[string]string{}
	flag.Func("rename-tag", "Rename a comment tag, old=new (repeatable)", func(v string) error {
		from, to, ok := strings.Cut(v, "=")
		if !ok {
			return fmt.Errorf("expected old=new, got %q", v)
		}
		renames[from] = to
		return nil
	})

	flag.Parse()

	if *dirFlag == "" && flag.NArg() > 0 {
		*dirFlag = flag.Arg(0)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	presets, err := preset.Load(settings.PresetsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading presets: %v\n", err)
		os.Exit(1)
	}

	if *listPresetsFlag {
		if len(presets) == 0 {
			fmt.Printf("No presets found at %s\n", settings.PresetsPath)
			return
		}
		fmt.Println("Available presets:")
		for _, p := range presets {
			fmt.Printf("  %s (%d op(s))\n", p.Name, p.Config().Enabled())
		}
		return
	}

	hasAction := *presetFlag != "" || *cleanTagsFlag || *resizeArtFlag || len(renames) > 0

	if *dirFlag == "" || !hasAction {
		fmt.Println("Bulk Tag Utility - Batch edit audio file tags")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  bulktag -dir <folder> -preset <name> [options]")
		fmt.Println("  bulktag -dir <folder> -clean-tags")
		fmt.Println("  bulktag -dir <folder> -rename-tag old=new [-rename-tag old=new ...]")
		fmt.Println()
		fmt.Println("For interactive mode, use: bulktag-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	st := store.NewID3Store(settings.BackupOriginals)
	hist := history.NewManager(settings.MaxHistory)
	runner := batch.NewRunner(st, hist, func(event batch.ProgressEvent) {
		if event.Level == batch.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case batch.LevelError:
			prefix = "❌ "
		case batch.LevelWarning:
			prefix = "⚠️  "
		case batch.LevelSuccess:
			prefix = "✅ "
		case batch.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	fmt.Println("🏷  Bulk Tag Utility")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	scanner := scan.NewScanner(st, settings.Extensions, settings.MaxConcurrentLoads)
	items, failures, err := scanner.Scan(ctx, *dirFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", *dirFlag, err)
		os.Exit(1)
	}
	for _, failure := range failures {
		fmt.Printf("⚠️  Could not load %s: %v\n", failure.Path, failure.Err)
	}
	if len(items) == 0 {
		fmt.Println("No audio files found.")
		return
	}
	fmt.Printf("Found %d file(s)\n\n", len(items))

	if len(renames) > 0 {
		if _, err := runner.RenameCommentTags(ctx, items, renames); err != nil {
			exitForRunError(ctx, err)
		}
	}

	if *cleanTagsFlag {
		if _, err := runner.CleanCommentTags(ctx, items); err != nil {
			exitForRunError(ctx, err)
		}
	}

	if *resizeArtFlag {
		resizeArtwork(ctx, items, settings.ArtworkMaxSize)
	}

	if *presetFlag != "" {
		p, ok := preset.Find(presets, *presetFlag)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown preset %q (try -list-presets)\n", *presetFlag)
			os.Exit(1)
		}
		cfg := p.Config()
		if cfg.Enabled() == 0 {
			fmt.Printf("Preset %q has no operations enabled.\n", p.Name)
			return
		}

		if *previewFlag {
			after, _ := runner.Preview(items[0], cfg)
			fmt.Println(batch.PreviewReport(items[0], after, len(items)))
			return
		}

		label := fmt.Sprintf("Applied preset %q to %d file(s)", p.Name, len(items))
		result, err := runner.Run(ctx, items, cfg, label)
		if err != nil {
			exitForRunError(ctx, err)
		}
		if len(result.Failures) > 0 {
			os.Exit(1)
		}
	}

	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("✨ Done!")
}

func exitForRunError(ctx context.Context, err error) {
	if ctx.Err() != nil {
		fmt.Println("\nCancelled.")
		os.Exit(130)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func resizeArtwork(ctx context.Context, items []*model.Item, maxSize int) {
	resized := 0
	for _, item := range items {
		if ctx.Err() != nil {
			return
		}
		ok, err := store.ResizeArtwork(ctx, item.Path, maxSize)
		if err != nil {
			fmt.Printf("⚠️  Could not resize artwork of %s: %v\n", item.Filename, err)
			continue
		}
		if ok {
			resized++
		}
	}
	fmt.Printf("✅ Resized artwork in %d file(s)\n", resized)
}
