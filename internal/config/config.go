// Package config loads runtime settings shared by the recruitkit tools.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables (see the env tags on Config).
//  4. Command-line flags, which override everything above.
//
// Positional arguments (database URL, domain) are applied by each command
// after LoadConfig returns.
package config

// Config holds runtime settings for all tools. Each command reads only the
// fields it needs.
type Config struct {
	DatabaseDSN string `json:"database_dsn" env:"DATABASE_URL"`
	LogLevel    string `json:"log_level"    env:"LOG_LEVEL"`

	// Token generator / notifier.
	Domain           string `json:"domain"             env:"MIGRATION_DOMAIN"`
	MigrationRoleID  int    `json:"migration_role_id"  env:"MIGRATION_ROLE_ID"`
	TokenLength      int    `json:"token_length"       env:"TOKEN_LENGTH"`
	TokenMaxAttempts int    `json:"token_max_attempts" env:"TOKEN_MAX_ATTEMPTS"`
	DryRun           bool   `json:"dry_run"            env:"DRY_RUN"`

	// Mail relay, used only when DryRun is false.
	SMTPAddr     string `json:"smtp_addr"     env:"SMTP_ADDR"`
	SMTPFrom     string `json:"smtp_from"     env:"SMTP_FROM"`
	SMTPUser     string `json:"smtp_user"     env:"SMTP_USER"`
	SMTPPassword string `json:"smtp_password" env:"SMTP_PASSWORD"`

	// Locale files.
	LocalesDir        string `json:"locales_dir"        env:"LOCALES_DIR"`
	SourceLanguage    string `json:"source_language"    env:"SOURCE_LANGUAGE"`
	ManifestName      string `json:"manifest_name"      env:"LOCALE_MANIFEST"`
	LocaleBackend     string `json:"locale_backend"     env:"LOCALE_BACKEND"`
	TranslateEndpoint string `json:"translate_endpoint" env:"TRANSLATE_ENDPOINT"`

	// S3-compatible bucket, used when LocaleBackend is "s3".
	S3Bucket       string `json:"s3_bucket"        env:"S3_BUCKET"`
	S3Prefix       string `json:"s3_prefix"        env:"S3_PREFIX"`
	S3Region       string `json:"s3_region"        env:"S3_REGION"`
	S3BaseEndpoint string `json:"s3_base_endpoint" env:"S3_BASE_ENDPOINT"`
	S3RootUser     string `json:"s3_root_user"     env:"S3_ROOT_USER"`
	S3RootPassword string `json:"s3_root_password" env:"S3_ROOT_PASSWORD"`

	// Password hasher.
	BcryptCost int `json:"bcrypt_cost" env:"BCRYPT_COST"`
}

const (
	BackendDir = "dir"
	BackendS3  = "s3"
)

// LoadDefaults populates c with development defaults. DryRun is on so
// nothing is mailed unless the operator asks for it.
func (c *Config) LoadDefaults() {
	c.LogLevel = "info"
	c.MigrationRoleID = 2
	c.TokenLength = 16
	c.TokenMaxAttempts = 100
	c.DryRun = true
	c.SMTPAddr = "smtp.example.com:25"
	c.SMTPFrom = "your_email@example.com"
	c.LocalesDir = "src/lib/locales"
	c.SourceLanguage = "en"
	c.ManifestName = "localeConfig.ts"
	c.LocaleBackend = BackendDir
	c.TranslateEndpoint = "https://translate.googleapis.com/translate_a/single"
	c.S3Region = "us-east-1"
	c.BcryptCost = 10
}

// LoadConfig builds a Config from defaults, then the optional JSON file,
// the environment and finally the flags found in args (usually
// os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, nil); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
