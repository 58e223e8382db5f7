package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("unexpected port: %q", cfg.Server.Port)
	}
	if cfg.Storage.Driver != StorageDriverFile || cfg.Storage.FilePath == "" {
		t.Fatalf("unexpected storage defaults: %+v", cfg.Storage)
	}
	if cfg.Backup.Enabled {
		t.Fatalf("backups must default to disabled")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "dynamodb")
	t.Setenv("SERVICES_TABLE", "servicos_test")
	t.Setenv("BACKUP_ENABLED", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("unexpected port: %q", cfg.Server.Port)
	}
	if cfg.Storage.Driver != StorageDriverDynamoDB || cfg.Storage.Table != "servicos_test" {
		t.Fatalf("unexpected storage: %+v", cfg.Storage)
	}
	if !cfg.Backup.Enabled || cfg.Backup.CronSchedule == "" {
		t.Fatalf("unexpected backup config: %+v", cfg.Backup)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid file driver", mutate: func(*Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "redis" }, wantErr: true},
		{name: "file driver without path", mutate: func(c *Config) { c.Storage.FilePath = "" }, wantErr: true},
		{name: "dynamodb without table", mutate: func(c *Config) {
			c.Storage.Driver = StorageDriverDynamoDB
			c.Storage.Table = ""
		}, wantErr: true},
		{name: "enabled backup without schedule", mutate: func(c *Config) {
			c.Backup.Enabled = true
			c.Backup.CronSchedule = ""
		}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				Server:  ServerConfig{Port: "8080"},
				Storage: StorageConfig{Driver: StorageDriverFile, FilePath: "data/x.json", Table: "servicos"},
				Backup:  BackupConfig{CronSchedule: "0 3 * * *", Dir: "backups"},
			}
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
