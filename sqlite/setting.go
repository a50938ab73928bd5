package sqlite

import (
	"context"
	"database/sql"

	"github.com/ranjeethpt/openowl"
)

// Compile-time interface verification.
var _ openowl.SettingService = (*SettingService)(nil)

// SettingService implements openowl.SettingService using SQLite.
type SettingService struct {
	db *DB
}

// NewSettingService creates a new SettingService.
func NewSettingService(db *DB) *SettingService {
	return &SettingService{db: db}
}

// GetSetting retrieves a setting by key.
func (s *SettingService) GetSetting(ctx context.Context, key string) (*openowl.Setting, error) {
	var setting openowl.Setting

	err := s.db.QueryRowContext(ctx, `
		SELECT key, value FROM settings WHERE key = ?
	`, key).Scan(&setting.Key, &setting.Value)

	if err == sql.ErrNoRows {
		return nil, openowl.Errorf(openowl.ENOTFOUND, "setting %q not found", key)
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// SetSetting creates or replaces a setting.
func (s *SettingService) SetSetting(ctx context.Context, setting *openowl.Setting) error {
	if err := setting.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, setting.Key, setting.Value)

	return err
}

// AllSettings retrieves every stored setting, sorted by key.
func (s *SettingService) AllSettings(ctx context.Context) ([]*openowl.Setting, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM settings ORDER BY key ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []*openowl.Setting
	for rows.Next() {
		var setting openowl.Setting
		if err := rows.Scan(&setting.Key, &setting.Value); err != nil {
			return nil, err
		}
		settings = append(settings, &setting)
	}
	return settings, rows.Err()
}

// DeleteSetting removes a setting.
func (s *SettingService) DeleteSetting(ctx context.Context, key string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return openowl.Errorf(openowl.ENOTFOUND, "setting %q not found", key)
	}
	return nil
}
