package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for qday, stored in ~/.qday/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	Gemini GeminiConfig `json:"gemini"`
}

// GeminiConfig holds the settings for the AI advice service.
type GeminiConfig struct {
	// APIKey authenticates against the Generative Language API. When empty,
	// the GEMINI_API_KEY environment variable is used instead.
	APIKey string `json:"api_key"`
	// Model is the text-generation model name.
	Model string `json:"model"`
	// Temperature controls randomness; TopP and TopK bound sampling breadth.
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	TopK        int     `json:"top_k"`
	// TimeoutSeconds bounds a single advice request.
	TimeoutSeconds int `json:"timeout_seconds"`
	// Language is the language the advice should be written in.
	Language string `json:"language"`
}

const (
	// DefaultModel is the text-generation model used when none is configured.
	DefaultModel = "gemini-2.0-flash"
	// DefaultLanguage is the advice output language.
	DefaultLanguage = "English"
	// DefaultTimeoutSeconds bounds a single advice request.
	DefaultTimeoutSeconds = 30
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		Gemini: GeminiConfig{
			APIKey:         "",
			Model:          DefaultModel,
			Temperature:    0.7,
			TopP:           0.8,
			TopK:           40,
			TimeoutSeconds: DefaultTimeoutSeconds,
			Language:       DefaultLanguage,
		},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// qday configuration – ~/.qday/config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box once an API key is supplied. Edit this file to customise qday.
{
  // ── AI advice (Google Generative Language API) ──────────────────────────
  "gemini": {
    // API key for the Generative Language API. Leave empty to read it from
    // the GEMINI_API_KEY environment variable instead.
    "api_key": "",

    // Text-generation model name.
    "model": "gemini-2.0-flash",

    // Sampling parameters passed through to the service.
    // temperature controls randomness; top_p and top_k bound sampling breadth.
    "temperature": 0.7,
    "top_p": 0.8,
    "top_k": 40,

    // Timeout for a single advice request, in seconds.
    "timeout_seconds": 30,

    // Language the advice should be written in, e.g. "English" or "Russian".
    "language": "English"
  }
}
`

// configFilePath returns the path to ~/.qday/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".qday", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.qday/config.json, creating it with annotated defaults on
// first run. Lines starting with // are treated as comments and stripped
// before JSON parsing.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return applyEnv(defaultConfig()), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = DefaultModel
	}
	if cfg.Gemini.Temperature == 0 {
		cfg.Gemini.Temperature = 0.7
	}
	if cfg.Gemini.TopP == 0 {
		cfg.Gemini.TopP = 0.8
	}
	if cfg.Gemini.TopK == 0 {
		cfg.Gemini.TopK = 40
	}
	if cfg.Gemini.TimeoutSeconds == 0 {
		cfg.Gemini.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.Gemini.Language == "" {
		cfg.Gemini.Language = DefaultLanguage
	}

	return applyEnv(cfg), nil
}

// applyEnv fills the API key from the environment when the file leaves it empty.
func applyEnv(cfg Config) Config {
	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	return cfg
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
