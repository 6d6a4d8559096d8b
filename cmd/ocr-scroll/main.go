package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ocr-scroll/capture"
	"ocr-scroll/clipboard"
	"ocr-scroll/config"
	"ocr-scroll/frame"
	"ocr-scroll/hotkey"
	"ocr-scroll/input"
	"ocr-scroll/logutil"
	"ocr-scroll/ocr"
	"ocr-scroll/output"
	"ocr-scroll/region"
	"ocr-scroll/screenshot"
	"ocr-scroll/session"
	"ocr-scroll/textlog"
)

type cliOptions struct {
	outputDir      string
	pollIntervalMs int
	language       string
	pageSegMode    int
	diffMode       string
	pageAdvance    bool
	copyClipboard  bool
	fileLogging    bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts := &cliOptions{}
	cmd := newRootCmd(opts)
	cmd.SetArgs(os.Args[1:])
	return cmd.Execute()
}

func newRootCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ocr-scroll",
		Short: "Mark a screen region with hotkeys, OCR it on change, save the text",
		Long: "ocr-scroll watches a user-marked screen region, runs OCR whenever the\n" +
			"region visibly changes, deduplicates the extracted text, and writes one\n" +
			"timestamped text file when the session stops.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.outputDir, "output-dir", "", "directory for the output file (default: the program's directory)")
	flags.IntVar(&opts.pollIntervalMs, "poll-interval-ms", 0, "capture poll interval in milliseconds")
	flags.StringVar(&opts.language, "lang", "", "tesseract language code")
	flags.IntVar(&opts.pageSegMode, "psm", -1, "tesseract page segmentation mode")
	flags.StringVar(&opts.diffMode, "diff", "", "frame diff mode: exact or perceptual")
	flags.BoolVar(&opts.pageAdvance, "page-advance", false, "send Page Down after each captured chunk")
	flags.BoolVar(&opts.copyClipboard, "clipboard", false, "copy the final text to the clipboard on save")
	flags.BoolVar(&opts.fileLogging, "file-logging", false, "mirror logs to a rotating file")
	return cmd
}

func runSession(cmd *cobra.Command, opts *cliOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %v", err)
	}
	applyFlagOverrides(cmd, opts, cfg)

	logutil.Setup(cfg.EnableFileLogging)

	engine, err := ocr.New(ocr.Config{Language: cfg.Language, PageSegMode: cfg.PageSegMode})
	if err != nil {
		return fmt.Errorf("failed to initialize OCR engine: %v", err)
	}
	defer engine.Close()

	var differ frame.Differ = frame.ExactDiffer{}
	if cfg.DiffMode == config.DiffModePerceptual {
		differ = frame.NewPerceptualDiffer(cfg.PerceptualThreshold)
		log.Printf("Using perceptual frame diffing (threshold %d)", cfg.PerceptualThreshold)
	}

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = output.DefaultDir()
	}

	var copyText func(string) error
	if cfg.CopyToClipboard {
		if err := clipboard.Init(); err != nil {
			log.Printf("Clipboard disabled: %v", err)
		} else {
			copyText = clipboard.Write
		}
	}

	var advance func() error
	if cfg.PageAdvance {
		key := cfg.PageAdvanceKey
		advance = func() error { return input.Tap(key) }
	}

	tlog := textlog.New()
	controller := session.New(session.Options{
		Selector: region.NewSelector(),
		Log:      tlog,
		NewRunner: func(bounds image.Rectangle) session.Runner {
			return capture.New(capture.Options{
				Bounds:       bounds,
				Rasterize:    screenshot.CaptureRect,
				Grayscale:    screenshot.Grayscale,
				Differ:       differ,
				Recognizer:   engine,
				Log:          tlog,
				PollInterval: cfg.PollInterval,
				OCRDeadline:  cfg.OCRDeadline,
				Advance:      advance,
			})
		},
		CursorPos: input.CursorPosition,
		SaveText:  func(chunks []string) (string, error) { return output.Save(outputDir, chunks) },
		CopyText:  copyText,
	})

	hotkey.Listen([]hotkey.Binding{
		{Combo: cfg.HotkeyTopLeft, Action: controller.MarkTopLeft},
		{Combo: cfg.HotkeyBottomRight, Action: controller.MarkBottomRight},
		{Combo: cfg.HotkeyStart, Action: controller.StartCapture},
		{Combo: cfg.HotkeyStop, Action: controller.Stop},
	})

	printInstructions(cfg)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Printf("Shutting down due to signal...")
		controller.Stop()
		<-controller.Done()
	case <-controller.Done():
	}
	return nil
}

// applyFlagOverrides lets explicit command-line flags win over .env values.
func applyFlagOverrides(cmd *cobra.Command, opts *cliOptions, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		cfg.OutputDir = opts.outputDir
	}
	if flags.Changed("poll-interval-ms") && opts.pollIntervalMs > 0 {
		cfg.PollInterval = time.Duration(opts.pollIntervalMs) * time.Millisecond
	}
	if flags.Changed("lang") {
		cfg.Language = opts.language
	}
	if flags.Changed("psm") {
		cfg.PageSegMode = opts.pageSegMode
	}
	if flags.Changed("diff") {
		cfg.DiffMode = opts.diffMode
		if cfg.DiffMode != config.DiffModePerceptual {
			cfg.DiffMode = config.DiffModeExact
		}
	}
	if flags.Changed("page-advance") {
		cfg.PageAdvance = opts.pageAdvance
	}
	if flags.Changed("clipboard") {
		cfg.CopyToClipboard = opts.copyClipboard
	}
	if flags.Changed("file-logging") {
		cfg.EnableFileLogging = opts.fileLogging
	}
}

func printInstructions(cfg *config.Config) {
	fmt.Println("Instructions:")
	fmt.Printf("  1) Hover the mouse over the top-left corner of the region, press %s\n", cfg.HotkeyTopLeft)
	fmt.Printf("  2) Hover over the bottom-right corner, press %s\n", cfg.HotkeyBottomRight)
	fmt.Println("  After marking the region:")
	fmt.Printf("    - %s -> start capturing on change\n", cfg.HotkeyStart)
	fmt.Printf("    - %s -> stop and save\n", cfg.HotkeyStop)
	fmt.Println("")
}
