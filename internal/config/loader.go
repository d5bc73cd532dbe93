package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = ".course-summarizer"
	configType = "yaml"
	envPrefix  = "COURSESUM"
)

// Load reads configuration from defaults, the config file and environment.
// If path is non-empty it is used as the explicit config file. Otherwise
// .course-summarizer.yaml is searched in the working directory and $HOME,
// then XDGConfigFile. A missing config file is not an error.
func Load(path string) (*Config, error) {
	v, err := read(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// LoadLineCountCommand resolves only linecount.command, from the same
// sources as Load. The summarizer sections are neither decoded nor
// validated.
func LoadLineCountCommand(path string) ([]string, error) {
	v, err := read(path)
	if err != nil {
		return nil, err
	}
	argv := strings.Fields(v.GetString("linecount.command"))
	if len(argv) == 0 {
		return nil, ErrNoLineCountCommand
	}
	return argv, nil
}

// read layers defaults, the config file and the environment.
func read(path string) (*viper.Viper, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if xdgFile := XDGConfigFile(); fileExists(xdgFile) {
			v.SetConfigFile(xdgFile)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}
	return v, nil
}

func applyDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("course.dir", d.Course.Dir)
	v.SetDefault("course.assignments", d.Course.Assignments)
	v.SetDefault("course.prefix", d.Course.Prefix)

	v.SetDefault("report.formats", d.Report.Formats)
	v.SetDefault("report.show_diff", d.Report.ShowDiff)

	v.SetDefault("archive.name", d.Archive.Name)
	v.SetDefault("archive.enabled", d.Archive.Enabled)

	v.SetDefault("mail.enabled", d.Mail.Enabled)
	v.SetDefault("mail.command", d.Mail.Command)
	v.SetDefault("mail.subject", d.Mail.Subject)
	v.SetDefault("mail.to", d.Mail.To)

	v.SetDefault("walk.extensions", d.Walk.Extensions)
	v.SetDefault("walk.exclude", []string{})
	v.SetDefault("walk.use_gitignore", d.Walk.UseGitignore)

	v.SetDefault("workers", d.Workers)
	v.SetDefault("linecount.command", d.LineCount.Command)
}

func fileExists(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && !fi.IsDir()
}
