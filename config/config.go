package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DiffModeExact      = "exact"
	DiffModePerceptual = "perceptual"
)

type Config struct {
	HotkeyTopLeft     string
	HotkeyBottomRight string
	HotkeyStart       string
	HotkeyStop        string

	PollInterval time.Duration
	OCRDeadline  time.Duration
	Language     string
	PageSegMode  int

	DiffMode            string
	PerceptualThreshold int

	PageAdvance    bool
	PageAdvanceKey string

	OutputDir         string
	CopyToClipboard   bool
	EnableFileLogging bool
}

func Load() (*Config, error) {
	// Try to load .env from the current directory or the executable's
	// directory (ignore errors if absent).
	envPaths := []string{".env"}
	if execPath, err := os.Executable(); err == nil {
		envPaths = append(envPaths, filepath.Join(filepath.Dir(execPath), ".env"))
	}
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			godotenv.Load(envPath)
			break
		}
	}

	cfg := &Config{
		HotkeyTopLeft:     getEnvWithDefault("HOTKEY_TOPLEFT", "ctrl+shift+1"),
		HotkeyBottomRight: getEnvWithDefault("HOTKEY_BOTTOMRIGHT", "ctrl+shift+2"),
		HotkeyStart:       getEnvWithDefault("HOTKEY_START", "ctrl+shift+c"),
		HotkeyStop:        getEnvWithDefault("HOTKEY_STOP", "ctrl+shift+q"),

		PollInterval: time.Duration(getEnvInt("POLL_INTERVAL_MS", 500)) * time.Millisecond,
		OCRDeadline:  time.Duration(getEnvInt("OCR_DEADLINE_SEC", 15)) * time.Second,
		Language:     getEnvWithDefault("OCR_LANG", "eng"),
		PageSegMode:  getEnvInt("OCR_PSM", 6),

		DiffMode:            resolveDiffMode(os.Getenv("DIFF_MODE")),
		PerceptualThreshold: getEnvInt("PERCEPTUAL_THRESHOLD", 5),

		PageAdvance:    getEnvBool("PAGE_ADVANCE"),
		PageAdvanceKey: getEnvWithDefault("PAGE_ADVANCE_KEY", "pagedown"),

		OutputDir:         os.Getenv("OUTPUT_DIR"),
		CopyToClipboard:   getEnvBool("COPY_TO_CLIPBOARD"),
		EnableFileLogging: getEnvBool("ENABLE_FILE_LOGGING"),
	}

	return cfg, nil
}

func resolveDiffMode(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case DiffModePerceptual:
		return DiffModePerceptual
	default:
		return DiffModeExact
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string) bool {
	return strings.ToLower(os.Getenv(key)) == "true"
}
