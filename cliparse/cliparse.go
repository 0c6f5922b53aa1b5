package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort       = 3318
	defaultSessionTTL = 72 * time.Hour
	defaultBallotTTL  = 30 * time.Minute
	defaultImageDir   = "./nominee-images"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	// ResultsContestID is the contest shown on the public results page.
	ResultsContestID string
	AllowReset       bool

	SessionSecret string
	SessionTTL    time.Duration
	BallotTTL     time.Duration
	IPHashSalt    string

	PublicBaseURL string
	ImageDir      string
	S3            S3Config

	// Bootstrap admin, created or refreshed at startup when both are set.
	AdminEmail    string
	AdminPassword string
}

// S3Config selects an S3-compatible bucket for nominee images when Endpoint is set.
type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("seufirmino-awards", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.PublicBaseURL, "base-url", "", "Public base URL used in vote links")
	fs.StringVar(&cfg.ImageDir, "image-dir", "", "Directory for nominee images")

	// Contest behaviour
	fs.StringVar(&cfg.ResultsContestID, "results-contest", "", "Contest shown on the results page")
	fs.BoolVar(&cfg.AllowReset, "allow-reset", false, "Enable contest reset and delete")
	fs.DurationVar(&cfg.BallotTTL, "ballot-ttl", 0, "Idle lifetime of an in-progress ballot")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Admin session signing secret (prefer env)")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", 0, "Admin session lifetime")
	fs.StringVar(&cfg.IPHashSalt, "ip-salt", "", "Salt for hashing voter IPs (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.ResultsContestID == "" {
		cfg.ResultsContestID = os.Getenv("RESULTS_CONTEST_ID")
	}
	if cfg.ResultsContestID == "" {
		return Config{}, errors.New("results contest required (use -results-contest or RESULTS_CONTEST_ID env)")
	}

	if !set["allow-reset"] {
		cfg.AllowReset = parseAllowReset(os.Getenv("ALLOW_ADMIN_RESET"))
	}

	var err error
	if cfg.SessionTTL == 0 {
		if cfg.SessionTTL, err = durationEnv("SESSION_TTL", defaultSessionTTL); err != nil {
			return Config{}, err
		}
	}
	if cfg.BallotTTL == 0 {
		if cfg.BallotTTL, err = durationEnv("BALLOT_TTL", defaultBallotTTL); err != nil {
			return Config{}, err
		}
	}

	if cfg.IPHashSalt == "" {
		cfg.IPHashSalt = os.Getenv("IP_HASH_SALT")
	}

	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = os.Getenv("PUBLIC_BASE_URL")
		if cfg.PublicBaseURL == "" {
			cfg.PublicBaseURL = "http://localhost:" + strconv.Itoa(cfg.Port)
		}
	}

	if cfg.ImageDir == "" {
		cfg.ImageDir = os.Getenv("IMAGE_DIR")
		if cfg.ImageDir == "" {
			cfg.ImageDir = defaultImageDir
		}
	}

	cfg.S3 = S3Config{
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Bucket:    os.Getenv("S3_BUCKET"),
	}
	if v := os.Getenv("S3_USE_SSL"); v != "" {
		useSSL, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, errors.New("invalid S3_USE_SSL env variable")
		}
		cfg.S3.UseSSL = useSSL
	}
	if cfg.S3.Endpoint != "" && cfg.S3.Bucket == "" {
		return Config{}, errors.New("S3_BUCKET required when S3_ENDPOINT is set")
	}

	cfg.AdminEmail = os.Getenv("ADMIN_EMAIL")
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	return cfg, nil
}

// parseAllowReset reads the reset flag. Anything unparseable disables reset.
func parseAllowReset(v string) bool {
	if v == "" {
		return false
	}
	allow, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid ALLOW_ADMIN_RESET value, reset disabled", "value", v)
		return false
	}
	return allow
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return d, nil
}
