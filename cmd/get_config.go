package cmd

import (
	"path/filepath"

	"lapwatch/core"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

func GetConfig() (*core.Config, error) {
	statePath, err := resolveStatePath(viper.GetString("state-file"))
	if err != nil {
		return nil, err
	}
	return &core.Config{
		TickInterval:     viper.GetDuration("tick-interval"),
		AutoResume:       viper.GetBool("auto-resume"),
		Categories:       viper.GetStringSlice("categories"),
		StatePath:        statePath,
		RetryCount:       viper.GetInt("retry-count"),
		RetryDelay:       viper.GetDuration("retry-delay"),
		EnableVerboseLog: viper.GetBool("verbose"),
	}, nil
}

func resolveStatePath(path string) (string, error) {
	if path == "" {
		home, err := homedir.Dir()
		if err != nil {
			return "", errors.Wrap(err, "resolve home directory")
		}
		return filepath.Join(home, ".lapwatch", "state.yaml"), nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", errors.Wrapf(err, "expand state file path %s", path)
	}
	return expanded, nil
}
