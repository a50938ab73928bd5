package main

import (
	"fmt"

	"github.com/ranjeethpt/openowl"
)

// Run executes the config get command.
func (c *ConfigGetCmd) Run(deps *Dependencies) error {
	setting, err := deps.Settings.GetSetting(deps.Ctx, c.Key)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", openowl.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, setting.Value)
	return nil
}

// Run executes the config set command.
func (c *ConfigSetCmd) Run(deps *Dependencies) error {
	setting := &openowl.Setting{Key: c.Key, Value: c.Value}
	if err := deps.Settings.SetSetting(deps.Ctx, setting); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", openowl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Set %s\n", c.Key)
	return nil
}

// Run executes the config list command.
func (c *ConfigListCmd) Run(deps *Dependencies) error {
	settings, err := deps.Settings.AllSettings(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", openowl.ErrorMessage(err))
		return err
	}

	if len(settings) == 0 {
		fmt.Fprintln(deps.Stdout, "No settings stored. Use 'openowl config set <key> <value>'.")
		return nil
	}

	for _, s := range settings {
		fmt.Fprintf(deps.Stdout, "%s = %s\n", s.Key, s.Value)
	}
	return nil
}

// Run executes the config unset command.
func (c *ConfigUnsetCmd) Run(deps *Dependencies) error {
	if err := deps.Settings.DeleteSetting(deps.Ctx, c.Key); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", openowl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Unset %s\n", c.Key)
	return nil
}
