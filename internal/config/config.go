package config

type Config struct {
	General `mapstructure:"general"`
	Power   `mapstructure:"power"`
	Prime   `mapstructure:"prime"`
}

type General struct {
	Debug bool `mapstructure:"debug"`
}

type Power struct {
	Path string `mapstructure:"path"` // bbswitch pseudo-file
}

type Prime struct {
	Helper string `mapstructure:"helper"` // name or path of prime-select
}
