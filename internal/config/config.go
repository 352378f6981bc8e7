package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/popup-menu/internal/app"
	"github.com/atomicstack/popup-menu/internal/slug"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Items   []app.Item
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envItemsFile    = "POPUP_MENU_ITEMS"
	envX            = "POPUP_MENU_X"
	envY            = "POPUP_MENU_Y"
	envWidth        = "POPUP_MENU_WIDTH"
	envTitle        = "POPUP_MENU_TITLE"
	envSocketPath   = "POPUP_MENU_SOCKET"
	envExitOnSelect = "POPUP_MENU_EXIT_ON_SELECT"
	envShowFooter   = "POPUP_MENU_FOOTER"
	envTrace        = "POPUP_MENU_TRACE"
	envLogFile      = "POPUP_MENU_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("popup-menu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	itemsFile := fs.String("items", envOrDefault(env, envItemsFile, ""), "path to a TOML file describing menu items")
	x := fs.Int("x", envOrInt(env, envX, 0), "column of the menu's top-left corner")
	y := fs.Int("y", envOrInt(env, envY, 0), "row of the menu's top-left corner")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "inner menu width in cells (0 sizes to fit)")
	title := fs.String("title", envOrDefault(env, envTitle, ""), "heading rendered above the items")
	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "tmux socket used by item commands")
	exitOnSelect := fs.Bool("exit-on-select", envOrBool(env, envExitOnSelect, true), "exit after an item is selected")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *x < 0 {
		return Config{}, fmt.Errorf("x must be >= 0 (got %d)", *x)
	}
	if *y < 0 {
		return Config{}, fmt.Errorf("y must be >= 0 (got %d)", *y)
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}

	var items []app.Item
	if path := strings.TrimSpace(*itemsFile); path != "" {
		loaded, err := LoadItems(path)
		if err != nil {
			return Config{}, err
		}
		items = append(items, loaded...)
	}
	for _, text := range fs.Args() {
		items = append(items, app.Item{Text: text})
	}

	cfg := Config{
		App: app.Config{
			X:            *x,
			Y:            *y,
			Width:        *width,
			Title:        *title,
			SocketPath:   *socket,
			ExitOnSelect: *exitOnSelect,
			ShowFooter:   *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Items: items,
		Flags: map[string]string{
			"items":        *itemsFile,
			"x":            strconv.Itoa(*x),
			"y":            strconv.Itoa(*y),
			"width":        strconv.Itoa(*width),
			"title":        *title,
			"socket":       *socket,
			"exitOnSelect": strconv.FormatBool(*exitOnSelect),
			"footer":       strconv.FormatBool(*footer),
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// ErrNoItems is returned by Validate when nothing would be shown.
var ErrNoItems = errors.New("no menu items configured")

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if len(cfg.Items) == 0 {
		return ErrNoItems
	}
	for i, item := range cfg.Items {
		key := item.Slug
		if key == "" {
			key = item.Text
		}
		if slug.Make(key) == "" {
			return fmt.Errorf("item %d (%q) has an empty slug", i+1, item.Text)
		}
	}
	return nil
}
