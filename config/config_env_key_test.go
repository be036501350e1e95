package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsAuthPolicy(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Database.Driver != DriverPostgres {
		t.Fatalf("driver = %q, want %q", cfg.Database.Driver, DriverPostgres)
	}
	if cfg.Auth.TokenTTL != defaultTokenTTL {
		t.Fatalf("tokenTTL = %s, want %s", cfg.Auth.TokenTTL, defaultTokenTTL)
	}
	if cfg.Auth.ResetTokenTTL != defaultResetTokenTTL {
		t.Fatalf("resetTokenTTL = %s, want %s", cfg.Auth.ResetTokenTTL, defaultResetTokenTTL)
	}
	if cfg.Auth.CookieName != "token" {
		t.Fatalf("cookieName = %q, want token", cfg.Auth.CookieName)
	}
	if cfg.QRCode.Size != defaultQRCodeSize {
		t.Fatalf("qrcode size = %d, want %d", cfg.QRCode.Size, defaultQRCodeSize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "memory driver with secret", mutate: func(cfg *Config) {}},
		{name: "missing secret", mutate: func(cfg *Config) { cfg.SecretKey.Access = "" }, wantErr: true},
		{name: "unknown driver", mutate: func(cfg *Config) { cfg.Database.Driver = "mongo" }, wantErr: true},
		{name: "sqlite without path", mutate: func(cfg *Config) { cfg.Database.Driver = DriverSQLite }, wantErr: true},
		{name: "sqlite with path", mutate: func(cfg *Config) {
			cfg.Database.Driver = DriverSQLite
			cfg.Database.SQLitePath = "inventory.db"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Database.Driver = DriverMemory
			cfg.SecretKey.Access = "secret"
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected an error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
