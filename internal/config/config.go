// Package config resolves flag defaults from the environment and an
// optional ~/.cloudjanitor.yaml file.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/cloudjanitor/cloudjanitor/pkg/kube"
	"github.com/cloudjanitor/cloudjanitor/pkg/utils"
)

// DefaultSnapshotAgeDays is the age threshold applied when neither flag,
// environment, nor config file supplies one.
const DefaultSnapshotAgeDays = 90

const envPrefix = "CLOUDJANITOR"

// Defaults carries the resolved default values for command flags
type Defaults struct {
	Region          string
	SnapshotAgeDays int
	Kubeconfig      string
}

// Load resolves defaults in precedence order: environment variables
// (CLOUDJANITOR_REGION, CLOUDJANITOR_SNAPSHOT_AGE_DAYS,
// CLOUDJANITOR_KUBECONFIG), then ~/.cloudjanitor.yaml, then built-ins.
// A missing config file is not an error.
func Load() Defaults {
	v := viper.New()

	v.SetDefault("region", utils.GetDefaultRegion())
	v.SetDefault("snapshot_age_days", DefaultSnapshotAgeDays)
	v.SetDefault("kubeconfig", kube.DefaultKubeconfigPath())

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigName(".cloudjanitor")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	_ = v.ReadInConfig()

	return Defaults{
		Region:          v.GetString("region"),
		SnapshotAgeDays: v.GetInt("snapshot_age_days"),
		Kubeconfig:      v.GetString("kubeconfig"),
	}
}
