package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Output format selectors.
const (
	FormatPlain   = "plain"   // one YAML file per resource
	FormatAnsible = "ansible" // one aggregated playbook-variable file per resource type
)

// Config holds all backup configuration (CLI flags + environment + config file).
// It is built once by the CLI layer and treated as immutable for the run.
type Config struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	UseTLS    bool   `yaml:"use_tls"`
	VerifySSL bool   `yaml:"verify_ssl"`
	BackupDir string `yaml:"backup_dir"`
	Format    string `yaml:"format"`
	Katello   bool   `yaml:"katello"`
}

// ApplyEnv overlays environment variables onto fields the CLI left unset.
// Flags take precedence over environment, environment over config file.
func (c *Config) ApplyEnv() {
	if c.Host == "" {
		c.Host = os.Getenv("FOREMAN_HOST")
	}
	if c.Port == 0 {
		if v := os.Getenv("FOREMAN_PORT"); v != "" {
			c.Port, _ = strconv.Atoi(v)
		}
	}
	if c.Username == "" {
		c.Username = os.Getenv("FOREMAN_USER")
	}
	if c.Password == "" {
		c.Password = os.Getenv("FOREMAN_PASSWORD")
	}
	if !c.UseTLS {
		if v := os.Getenv("FOREMAN_USE_TLS"); v != "" {
			c.UseTLS, _ = strconv.ParseBool(v)
		}
	}
	if c.BackupDir == "" {
		c.BackupDir = os.Getenv("FOREMAN_BACKUP_DIR")
	}
	if c.Format == "" {
		c.Format = os.Getenv("FOREMAN_FORMAT")
	}
	if !c.Katello {
		if v := os.Getenv("FOREMAN_KATELLO"); v != "" {
			c.Katello, _ = strconv.ParseBool(v)
		}
	}
}

// LoadFile reads a YAML config file. Values from the file are only applied
// if the corresponding flag or environment variable did not already set them.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if c.Host == "" {
		c.Host = file.Host
	}
	if c.Port == 0 {
		c.Port = file.Port
	}
	if c.Username == "" {
		c.Username = file.Username
	}
	if c.Password == "" {
		c.Password = file.Password
	}
	if !c.UseTLS {
		c.UseTLS = file.UseTLS
	}
	if !c.VerifySSL {
		c.VerifySSL = file.VerifySSL
	}
	if c.BackupDir == "" {
		c.BackupDir = file.BackupDir
	}
	if c.Format == "" {
		c.Format = file.Format
	}
	if !c.Katello {
		c.Katello = file.Katello
	}
	return nil
}

// ApplyDefaults fills anything still unset.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		if c.UseTLS {
			c.Port = 443
		} else {
			c.Port = 80
		}
	}
	if c.BackupDir == "" {
		c.BackupDir = "foreman-backup"
	}
	if c.Format == "" {
		c.Format = FormatPlain
	}
}

// Validate rejects configurations the Exporter cannot run with.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("no Foreman host configured (flag --host or FOREMAN_HOST)")
	}
	if c.Username == "" || c.Password == "" {
		return fmt.Errorf("no credentials configured (flags --user/--password or FOREMAN_USER/FOREMAN_PASSWORD)")
	}
	if c.Format != FormatPlain && c.Format != FormatAnsible {
		return fmt.Errorf("unknown output format %q (want %q or %q)", c.Format, FormatPlain, FormatAnsible)
	}
	return nil
}

// BaseURL returns the full base URL for the configured server.
func (c *Config) BaseURL() string {
	scheme := "http"
	if c.UseTLS {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.Host, c.Port)
}
