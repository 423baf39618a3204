// Package config loads declarative instrument definitions from YAML files.
//
// A configuration file lists the instruments of a test station by name, each
// with its resource string and session settings:
//
//	instruments:
//	  - name: psu1
//	    resource: TCPIP::192.168.1.10::5025::SOCKET
//	    timeout: 5s
//	    read_termination: "\n"
//	    write_termination: "\n"
//	    auto_error_check: true
//	    description: Bench power supply
//
// The loaded settings convert to session options via SessionOptions, so a
// station can be brought up without hard-coding addresses.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/go-visa/visa"
)

// Duration decodes YAML duration strings such as "5s" or "200ms" into a
// time.Duration.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Std returns the value as a standard time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Instrument describes one instrument entry of a configuration file.
type Instrument struct {
	// Name is the unique identifier of the instrument within the file.
	Name string `yaml:"name"`
	// Resource is the resource string the session connects to.
	Resource string `yaml:"resource"`
	// Timeout is the I/O timeout, given as a duration string such as "5s".
	// Zero keeps the session default.
	Timeout Duration `yaml:"timeout"`
	// ReadTermination is the read termination character, given as a
	// single-character string. Empty disables read termination.
	ReadTermination string `yaml:"read_termination"`
	// WriteTermination is the character appended to every command write,
	// given as a single-character string. Empty disables it.
	WriteTermination string `yaml:"write_termination"`
	// AutoErrorCheck enables automatic error-queue checking after every
	// executed command.
	AutoErrorCheck bool `yaml:"auto_error_check"`
	// Description is free-form text for humans.
	Description string `yaml:"description"`
}

// SessionOptions converts the instrument settings into session options.
func (in *Instrument) SessionOptions() []visa.Option {
	var opts []visa.Option
	if in.Timeout > 0 {
		opts = append(opts, visa.WithTimeout(in.Timeout.Std()))
	}
	if in.ReadTermination != "" {
		opts = append(opts, visa.WithReadTermination(in.ReadTermination[0]))
	}
	if in.WriteTermination != "" {
		opts = append(opts, visa.WithWriteTermination(in.WriteTermination[0]))
	}
	opts = append(opts, visa.WithAutoErrorCheck(in.AutoErrorCheck))

	return opts
}

// Config is the root of a configuration file.
type Config struct {
	Instruments []Instrument `yaml:"instruments"`
}

// Instrument returns the entry with the given name, or nil when the file has
// no such instrument.
func (c *Config) Instrument(name string) *Instrument {
	for i := range c.Instruments {
		if c.Instruments[i].Name == name {
			return &c.Instruments[i]
		}
	}

	return nil
}

// Validate checks the configuration for missing names, missing or malformed
// resources, duplicated names, and termination strings longer than one
// character. The returned error names the offending instrument.
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Instruments))
	for i := range c.Instruments {
		in := &c.Instruments[i]
		label := in.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}

		if in.Name == "" {
			return fmt.Errorf("instrument %s: missing name", label)
		}
		if _, dup := seen[in.Name]; dup {
			return fmt.Errorf("instrument %s: duplicate name", label)
		}
		seen[in.Name] = struct{}{}

		if in.Resource == "" {
			return fmt.Errorf("instrument %s: missing resource", label)
		}
		if _, err := visa.ParseResource(in.Resource); err != nil {
			return fmt.Errorf("instrument %s: invalid resource %q: %w", label, in.Resource, err)
		}

		if len(in.ReadTermination) > 1 {
			return fmt.Errorf("instrument %s: read_termination must be a single character", label)
		}
		if len(in.WriteTermination) > 1 {
			return fmt.Errorf("instrument %s: write_termination must be a single character", label)
		}
	}

	return nil
}

// Parse decodes and validates a configuration from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load reads, decodes and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return Parse(data)
}
