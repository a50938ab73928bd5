package mock

import (
	"context"

	"github.com/ranjeethpt/openowl"
)

var _ openowl.SettingService = (*SettingService)(nil)

// SettingService is a mock implementation of openowl.SettingService.
type SettingService struct {
	GetSettingFn    func(ctx context.Context, key string) (*openowl.Setting, error)
	SetSettingFn    func(ctx context.Context, setting *openowl.Setting) error
	AllSettingsFn   func(ctx context.Context) ([]*openowl.Setting, error)
	DeleteSettingFn func(ctx context.Context, key string) error
}

func (s *SettingService) GetSetting(ctx context.Context, key string) (*openowl.Setting, error) {
	return s.GetSettingFn(ctx, key)
}

func (s *SettingService) SetSetting(ctx context.Context, setting *openowl.Setting) error {
	return s.SetSettingFn(ctx, setting)
}

func (s *SettingService) AllSettings(ctx context.Context) ([]*openowl.Setting, error) {
	return s.AllSettingsFn(ctx)
}

func (s *SettingService) DeleteSetting(ctx context.Context, key string) error {
	return s.DeleteSettingFn(ctx, key)
}
