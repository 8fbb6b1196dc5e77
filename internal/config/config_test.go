package config

import (
	"testing"

	"github.com/spf13/viper"
)

func newViper(overrides map[string]interface{}) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViperDefaults(t *testing.T) {
	cfg, err := FromViper(newViper(nil))
	if err != nil {
		t.Fatalf("FromViper() error = %v", err)
	}
	if !cfg.IsDev() || cfg.Port != "4000" {
		t.Errorf("mode/port = %s/%s", cfg.AppMode, cfg.Port)
	}
	if cfg.Database.Driver != "mysql" || cfg.Database.Port != "3306" {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.JWT.ExpiryDays != 7 {
		t.Errorf("ExpiryDays = %d, want 7", cfg.JWT.ExpiryDays)
	}
	if cfg.GetAllowedOrigins() != "*" {
		t.Errorf("GetAllowedOrigins() = %q, want *", cfg.GetAllowedOrigins())
	}
	if cfg.Cron.DailySummary != "5 0 * * *" {
		t.Errorf("DailySummary = %q", cfg.Cron.DailySummary)
	}
}

func TestFromViper(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]interface{}
		wantErr   bool
		check     func(t *testing.T, cfg *Config)
	}{
		{
			name:      "invalid mode",
			overrides: map[string]interface{}{"APP_MODE": "staging"},
			wantErr:   true,
		},
		{
			name:      "invalid driver",
			overrides: map[string]interface{}{"DB_DRIVER": "sqlite"},
			wantErr:   true,
		},
		{
			name:      "prod rejects default secret",
			overrides: map[string]interface{}{"APP_MODE": "prod"},
			wantErr:   true,
		},
		{
			name:      "prod with secret",
			overrides: map[string]interface{}{"APP_MODE": "prod", "JWT_SECRET": "s3cret"},
			check: func(t *testing.T, cfg *Config) {
				if !cfg.IsProd() || cfg.JWT.Secret != "s3cret" {
					t.Errorf("cfg = %+v", cfg)
				}
			},
		},
		{
			name:      "postgres default port",
			overrides: map[string]interface{}{"DB_DRIVER": " Postgres "},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Database.Driver != "postgres" || cfg.Database.Port != "5432" {
					t.Errorf("database = %+v", cfg.Database)
				}
			},
		},
		{
			name:      "non-positive expiry falls back",
			overrides: map[string]interface{}{"JWT_EXPIRY_DAYS": 0},
			check: func(t *testing.T, cfg *Config) {
				if cfg.JWT.ExpiryDays != 7 {
					t.Errorf("ExpiryDays = %d, want 7", cfg.JWT.ExpiryDays)
				}
			},
		},
		{
			name:      "explicit origins",
			overrides: map[string]interface{}{"ALLOWED_ORIGINS": " https://admin.example.com "},
			check: func(t *testing.T, cfg *Config) {
				if cfg.GetAllowedOrigins() != "https://admin.example.com" {
					t.Errorf("GetAllowedOrigins() = %q", cfg.GetAllowedOrigins())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := FromViper(newViper(tt.overrides))
			if tt.wantErr {
				if err == nil {
					t.Fatal("FromViper() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("FromViper() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}
