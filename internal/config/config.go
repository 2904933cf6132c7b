package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable, e.g. SYLLABUS_START_DATE.
const EnvPrefix = "SYLLABUS"

// Options holds every setting of a syllabus run
type Options struct {
	StartDate   string `yaml:"start_date" envconfig:"START_DATE" validate:"required"`
	EndDate     string `yaml:"end_date" envconfig:"END_DATE" validate:"required"`
	MeetingDays string `yaml:"meeting_days" envconfig:"MEETING_DAYS" validate:"required"`
	Holidays    string `yaml:"holidays" envconfig:"HOLIDAYS"`
	DateFormat  string `yaml:"date_format" envconfig:"DATE_FORMAT"`
	Format      string `yaml:"format" envconfig:"FORMAT"`
	Columns     int    `yaml:"columns" envconfig:"COLUMNS" validate:"gte=0"`
	Escape      bool   `yaml:"escape" envconfig:"ESCAPE"`
	Output      string `yaml:"output" envconfig:"OUTPUT"`
	LogLevel    string `yaml:"log_level" envconfig:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// Default returns the built-in settings.
func Default() Options {
	return Options{
		DateFormat: "%d %b",
		Format:     "csv",
		Columns:    0,
		LogLevel:   "warn",
	}
}

// Load starts from Default, then applies the YAML file at path (if path is
// not empty) and finally SYLLABUS_* environment variables.
func Load(path string) (Options, error) {
	opts := Default()

	if path != "" {
		if err := loadFromFile(path, &opts); err != nil {
			return opts, errors.Wrap(err, "failed to load config from file")
		}
	}

	if err := envconfig.Process(EnvPrefix, &opts); err != nil {
		return opts, errors.Wrap(err, "failed to load config from env")
	}

	return opts, nil
}

// loadFromFile overlays the keys present in the YAML file onto opts
func loadFromFile(path string, opts *Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.UnmarshalStrict(data, opts)
}
