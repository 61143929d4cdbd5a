package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/linepick/internal/app"
	"github.com/atomicstack/linepick/internal/match"
	"github.com/atomicstack/linepick/internal/ui"
	"github.com/mattn/go-shellwords"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the config file that was read, empty when none was found.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDefaultOpts = "LINEPICK_DEFAULT_OPTS"
	envConfig      = "LINEPICK_CONFIG"
	envHeight      = "LINEPICK_HEIGHT"
	envAlgorithm   = "LINEPICK_ALGO"
	envPrompt      = "LINEPICK_PROMPT"
	envTrace       = "LINEPICK_TRACE"
	envLogFile     = "LINEPICK_LOG_FILE"

	defaultConfigPath = "~/.config/linepick/config.toml"
)

// fileConfig mirrors the TOML config file. Pointers distinguish unset keys
// from zero values.
type fileConfig struct {
	Height    *int    `toml:"height"`
	Algorithm *string `toml:"algo"`
	Prompt    *string `toml:"prompt"`
	LogFile   *string `toml:"log_file"`
	Trace     *bool   `toml:"trace"`
}

// HelpError is returned when -h or --help is passed. Usage holds the flag
// summary to show the user.
type HelpError struct {
	Usage string
}

func (e *HelpError) Error() string {
	return flag.ErrHelp.Error()
}

func (e *HelpError) Unwrap() error {
	return flag.ErrHelp
}

// Load parses configuration from CLI arguments, environment variables and the
// config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// flag, then environment, then config file, then built-in default. Words from
// LINEPICK_DEFAULT_OPTS are parsed as if they preceded args.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	defaults, err := shellwords.Parse(env[envDefaultOpts])
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", envDefaultOpts, err)
	}
	argv := append(append([]string(nil), defaults...), args...)

	var usage strings.Builder
	fs := flag.NewFlagSet("linepick", flag.ContinueOnError)
	fs.SetOutput(&usage)

	configPath := fs.String("config", envOrDefault(env, envConfig, ""), "path to a TOML config file")
	height := fs.Int("height", envOrInt(env, envHeight, ui.DefaultHeight), "rows used by the inline picker")
	algo := fs.String("algo", envOrDefault(env, envAlgorithm, match.AlgorithmFuzzy), "match algorithm ("+strings.Join(match.Algorithms(), "|")+")")
	prompt := fs.String("prompt", envOrDefault(env, envPrompt, "query"), "title of the query box")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, &HelpError{Usage: usage.String()}
		}
		return Config{}, err
	}

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	fromFile := func(name, envKey string) bool {
		if explicit[name] {
			return false
		}
		_, ok := env[envKey]
		return !ok
	}

	file, path, err := loadFile(*configPath, explicit["config"] || env[envConfig] != "")
	if err != nil {
		return Config{}, err
	}
	if file.Height != nil && fromFile("height", envHeight) {
		*height = *file.Height
	}
	if file.Algorithm != nil && fromFile("algo", envAlgorithm) {
		*algo = *file.Algorithm
	}
	if file.Prompt != nil && fromFile("prompt", envPrompt) {
		*prompt = *file.Prompt
	}
	if file.Trace != nil && fromFile("trace", envTrace) {
		*trace = *file.Trace
	}
	if file.LogFile != nil && fromFile("log-file", envLogFile) {
		*logFile = mustExpand(*file.LogFile)
	}

	cfg := Config{
		App: app.Config{
			Height:    *height,
			Algorithm: strings.ToLower(strings.TrimSpace(*algo)),
			Prompt:    *prompt,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: path,
		Flags: map[string]string{
			"config":  *configPath,
			"height":  strconv.Itoa(*height),
			"algo":    *algo,
			"prompt":  *prompt,
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), fs.Args()...),
	}

	return cfg, nil
}

// loadFile reads the TOML config. A missing file is only an error when the
// caller asked for that file explicitly.
func loadFile(path string, required bool) (fileConfig, string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	resolved, err := expandPath(path)
	if err != nil {
		return fileConfig{}, "", err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return fileConfig{}, "", nil
		}
		return fileConfig{}, "", fmt.Errorf("read config: %w", err)
	}
	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fileConfig{}, "", fmt.Errorf("parse config %s: %w", resolved, err)
	}
	return raw, resolved, nil
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

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

// MustLoad returns configuration or exits. A help request prints the flag
// summary to stderr and exits successfully.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		var help *HelpError
		if errors.As(err, &help) {
			fmt.Fprint(os.Stderr, help.Usage)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the loaded values are usable.
func Validate(cfg Config) error {
	if cfg.App.Height < ui.MinHeight {
		return fmt.Errorf("height must be >= %d (got %d)", ui.MinHeight, cfg.App.Height)
	}
	if _, err := match.New(cfg.App.Algorithm); err != nil {
		return err
	}
	return nil
}
