package openowl

import "context"

// Setting keys recognized by the CLI. The store itself is an open
// key-value space; unknown keys are stored as-is.
const (
	SettingProvider      = "provider"       // "gemini" or "openai"
	SettingModel         = "model"          // provider model name
	SettingBaseURL       = "base_url"       // OpenAI-compatible endpoint, e.g. a local server
	SettingReaderEngine  = "reader_engine"  // "readability" or "trafilatura"
	SettingExtractBudget = "extract_budget" // dispatch deadline, Go duration string
)

// Setting is a single key-value configuration entry.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Validate returns an error if the setting contains invalid fields.
func (s *Setting) Validate() error {
	if s.Key == "" {
		return Errorf(EINVALID, "setting key required")
	}
	return nil
}

// SettingService represents a key-value settings store.
type SettingService interface {
	// GetSetting retrieves a setting by key.
	// Returns ENOTFOUND if the key does not exist.
	GetSetting(ctx context.Context, key string) (*Setting, error)

	// SetSetting creates or replaces a setting.
	SetSetting(ctx context.Context, setting *Setting) error

	// AllSettings retrieves every stored setting, sorted by key.
	AllSettings(ctx context.Context) ([]*Setting, error)

	// DeleteSetting removes a setting.
	// Returns ENOTFOUND if the key does not exist.
	DeleteSetting(ctx context.Context, key string) error
}
