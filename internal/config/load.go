package config

import (
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix = "nvctl"

	DefaultPowerPath   = "/proc/acpi/bbswitch"
	DefaultPrimeHelper = "prime-select"
)

var cfg Config

// overrides are applied on top of defaults and environment on every load
var overrides = map[string]interface{}{}

func getViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // NVCTL_POWER_PATH, NVCTL_PRIME_HELPER, NVCTL_GENERAL_DEBUG
	return v
}

func setDefaultConfig() *viper.Viper {
	v := getViper()
	v.SetDefault("general.debug", false)
	v.SetDefault("power.path", DefaultPowerPath)
	v.SetDefault("prime.helper", DefaultPrimeHelper)
	return v
}

// LoadConfig rebuilds the configuration from defaults, the environment and
// any values passed to SetConfig. There is no configuration file.
func LoadConfig() {
	v := setDefaultConfig()
	for key, value := range overrides {
		v.Set(key, value)
	}

	var loaded Config
	if err := v.Unmarshal(&loaded); err != nil {
		loaded = Config{}
		_ = setDefaultConfig().Unmarshal(&loaded)
	}
	cfg = loaded
}

func SetConfig(key string, value interface{}) {
	overrides[key] = value
	LoadConfig()
}

// ResetConfig drops overrides and forces the next GetConfig to reload.
func ResetConfig() {
	overrides = map[string]interface{}{}
	cfg = Config{}
}

func GetConfig() *Config {
	if reflect.DeepEqual(cfg, Config{}) {
		LoadConfig()
	}
	return &cfg
}
