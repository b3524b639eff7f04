package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Transport != "stdio" {
		t.Errorf("Server.Transport = %q, want stdio", cfg.Server.Transport)
	}
	if cfg.Server.Address() != "127.0.0.1:8080" {
		t.Errorf("Server.Address() = %q, want 127.0.0.1:8080", cfg.Server.Address())
	}
	if cfg.TMDB.BaseURL != "https://api.themoviedb.org/3" {
		t.Errorf("TMDB.BaseURL = %q", cfg.TMDB.BaseURL)
	}
	if cfg.TMDB.Language != "en-US" {
		t.Errorf("TMDB.Language = %q, want en-US", cfg.TMDB.Language)
	}
	if cfg.TMDB.Timeout != 30 {
		t.Errorf("TMDB.Timeout = %d, want 30", cfg.TMDB.Timeout)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MOVIEHALL_SERVER_TRANSPORT", "http")
	t.Setenv("MOVIEHALL_TMDB_API_KEY", "prefixed-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Transport != "http" {
		t.Errorf("Server.Transport = %q, want http", cfg.Server.Transport)
	}
	if cfg.TMDB.APIKey != "prefixed-key" {
		t.Errorf("TMDB.APIKey = %q, want prefixed-key", cfg.TMDB.APIKey)
	}
}

func TestLoad_BareAPIKeyEnv(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "bare-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TMDB.APIKey != "bare-key" {
		t.Errorf("TMDB.APIKey = %q, want bare-key", cfg.TMDB.APIKey)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("server:\n  transport: http\n  port: 9090\ntmdb:\n  api_key: file-key\n  language: de-DE\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Transport != "http" || cfg.Server.Port != 9090 {
		t.Errorf("server config = %+v", cfg.Server)
	}
	if cfg.TMDB.APIKey != "file-key" {
		t.Errorf("TMDB.APIKey = %q, want file-key", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.Language != "de-DE" {
		t.Errorf("TMDB.Language = %q, want de-DE", cfg.TMDB.Language)
	}
	// Untouched keys keep their defaults.
	if cfg.TMDB.Timeout != 30 {
		t.Errorf("TMDB.Timeout = %d, want 30", cfg.TMDB.Timeout)
	}
}

func TestLoad_BadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not: valid"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() succeeded with malformed config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid stdio",
			cfg:  Config{TMDB: TMDBConfig{APIKey: "k"}, Server: ServerConfig{Transport: "stdio"}},
		},
		{
			name: "valid http",
			cfg:  Config{TMDB: TMDBConfig{APIKey: "k"}, Server: ServerConfig{Transport: "http"}},
		},
		{
			name:    "missing api key",
			cfg:     Config{Server: ServerConfig{Transport: "stdio"}},
			wantErr: ErrAPIKeyMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestValidate_UnknownTransport(t *testing.T) {
	cfg := Config{TMDB: TMDBConfig{APIKey: "k"}, Server: ServerConfig{Transport: "grpc"}}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted unknown transport")
	}
}
