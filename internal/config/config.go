package config

import "github.com/spf13/viper"

type (
	Config struct {
		Export
		UI
	}

	Export struct {
		OutputDir string // Directory for converted markdown files
	}
	UI struct {
		Progress bool // Show the terminal progress bar
	}
)

// EnvPrefix namespaces the environment variables the tool reads, e.g.
// HIGHLIGHTS_OUTPUT_DIR.
const EnvPrefix = "HIGHLIGHTS"

func NewConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("progress", true)

	return &Config{
		Export: Export{
			OutputDir: v.GetString("OUTPUT_DIR"),
		},
		UI: UI{
			Progress: v.GetBool("PROGRESS"),
		},
	}
}
