package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FAMIGLIA_API_URL", "")
	t.Setenv("FAMIGLIA_STATE_PATH", "")
	t.Setenv("FAMIGLIA_LOG_LEVEL", "")

	cfg := Load()
	if cfg.APIBaseURL != "http://localhost:3000" {
		t.Errorf("APIBaseURL = %q, want default", cfg.APIBaseURL)
	}
	if cfg.StatePath != "famiglia.db" {
		t.Errorf("StatePath = %q, want famiglia.db", cfg.StatePath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FAMIGLIA_API_URL", "https://crm.example.com")
	t.Setenv("FAMIGLIA_STATE_PATH", "/tmp/state.db")

	cfg := Load()
	if cfg.APIBaseURL != "https://crm.example.com" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.StatePath != "/tmp/state.db" {
		t.Errorf("StatePath = %q", cfg.StatePath)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{APIBaseURL: "http://localhost:3000", StatePath: "x.db"}, false},
		{"empty url", Config{APIBaseURL: "", StatePath: "x.db"}, true},
		{"bad scheme", Config{APIBaseURL: "ftp://host", StatePath: "x.db"}, true},
		{"empty state path", Config{APIBaseURL: "http://localhost", StatePath: ""}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
