package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyEnv_Precedence(t *testing.T) {
	t.Setenv("FOREMAN_HOST", "env.example.com")
	t.Setenv("FOREMAN_PORT", "8443")
	t.Setenv("FOREMAN_USER", "envuser")

	// Flag-set values survive, unset ones come from the environment.
	c := &Config{Host: "flag.example.com"}
	c.ApplyEnv()

	if c.Host != "flag.example.com" {
		t.Errorf("Host = %q, want flag.example.com (flag wins)", c.Host)
	}
	if c.Port != 8443 {
		t.Errorf("Port = %d, want 8443 (from env)", c.Port)
	}
	if c.Username != "envuser" {
		t.Errorf("Username = %q, want envuser (from env)", c.Username)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("host: file.example.com\nport: 443\nusername: fileuser\npassword: filepass\nuse_tls: true\nkatello: true\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	c := &Config{Username: "flaguser"}
	if err := c.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if c.Host != "file.example.com" {
		t.Errorf("Host = %q, want file.example.com", c.Host)
	}
	if c.Username != "flaguser" {
		t.Errorf("Username = %q, want flaguser (flag wins over file)", c.Username)
	}
	if !c.UseTLS || !c.Katello {
		t.Errorf("UseTLS = %v, Katello = %v, want both true", c.UseTLS, c.Katello)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	c := &Config{}
	if err := c.LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFile on missing file should return error")
	}
}

func TestApplyDefaults(t *testing.T) {
	c := &Config{}
	c.ApplyDefaults()
	if c.Port != 80 {
		t.Errorf("Port = %d, want 80", c.Port)
	}
	if c.Format != FormatPlain {
		t.Errorf("Format = %q, want %q", c.Format, FormatPlain)
	}
	if c.BackupDir == "" {
		t.Error("BackupDir still empty after defaults")
	}

	tls := &Config{UseTLS: true}
	tls.ApplyDefaults()
	if tls.Port != 443 {
		t.Errorf("Port with TLS = %d, want 443", tls.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		c       Config
		wantErr bool
	}{
		{"valid plain", Config{Host: "f", Username: "u", Password: "p", Format: FormatPlain}, false},
		{"valid ansible", Config{Host: "f", Username: "u", Password: "p", Format: FormatAnsible}, false},
		{"missing host", Config{Username: "u", Password: "p", Format: FormatPlain}, true},
		{"missing password", Config{Host: "f", Username: "u", Format: FormatPlain}, true},
		{"bad format", Config{Host: "f", Username: "u", Password: "p", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.c.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate = %v, wantErr = %v", err, tc.wantErr)
			}
		})
	}
}

func TestBaseURL(t *testing.T) {
	c := &Config{Host: "foreman.example.com", Port: 443, UseTLS: true}
	if got := c.BaseURL(); got != "https://foreman.example.com:443" {
		t.Errorf("BaseURL = %q", got)
	}
	c = &Config{Host: "foreman.example.com", Port: 3000}
	if got := c.BaseURL(); got != "http://foreman.example.com:3000" {
		t.Errorf("BaseURL = %q", got)
	}
}
