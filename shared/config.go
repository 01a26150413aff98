package shared

import (
	"encoding/json"
	"github.com/joho/godotenv"
	"github.com/tailscale/hujson"
	"log"
	"os"
)

const (
	configVarName  = "CONFIG"                      // If set, will load config from this path and not from devConfigPath
	secretsVarName = "SECRETS"                     // If set, will load secrets from this path and not from devSecretsPath
	envFileName    = ".env"                        // Optional; may set CONFIG and SECRETS
	devConfigPath  = "../../dev/config.dev.jsonc"  // Path to config file in development environment
	devSecretsPath = "../../dev/secrets.dev.jsonc" // Path to secrets file in development environment
)

const (
	TrackKeyAudioUrl    = "audio_url"
	TrackKeySiteTrackId = "site_track_id"
)

type Config struct {
	Secrets           Secrets        `json:"-"`
	LogFile           string         `json:"log_file"`
	LogLevel          string         `json:"log_level"`
	ServicePort       uint           `json:"service_port"`
	Host              string         `json:"host"`
	DbFile            string         `json:"db_file"`
	ViewerStoreDir    string         `json:"viewer_store_dir"` // If set, hidden-track lists live in JSON files here
	Site              SiteInfo       `json:"site"`
	PlaceholderTitles []string       `json:"placeholder_titles"`
	TrackKeyScheme    string         `json:"track_key_scheme"`
	SeedPeers         []string       `json:"seed_peers"`
	BlockedHosts      []string       `json:"blocked_hosts"`
	BlockedHostsFile  string         `json:"blocked_hosts_file"`
	AllowPrivatePeers bool           `json:"allow_private_peers"` // Lets outgoing requests reach loopback and private addresses
	ProfileDir        string         `json:"profile_dir"` // If set, goroutine dumps are written here periodically
	ProfileKeepDays   int            `json:"profile_keep_days"`
	Crawler           CrawlerConfig  `json:"crawler"`
	Delivery          DeliveryConfig `json:"delivery"`
	Identity          IdentityConfig `json:"identity"`
}

// SiteInfo is how this instance announces itself to peers.
type SiteInfo struct {
	Title      string `json:"title"`
	ArtistName string `json:"artist_name"`
	CoverImage string `json:"cover_image"`
	FeedUrl    string `json:"feed_url"`
}

type CrawlerConfig struct {
	IntervalSec int `json:"interval_sec"`
	Parallel    int `json:"parallel"`
	TimeoutSec  int `json:"timeout_sec"`
}

type DeliveryConfig struct {
	Workers        int `json:"workers"`
	MaxAttempts    int `json:"max_attempts"`
	BaseBackoffSec int `json:"base_backoff_sec"`
	MaxBackoffSec  int `json:"max_backoff_sec"`
	TimeoutSec     int `json:"timeout_sec"`
	IdleWakeSec    int `json:"idle_wake_sec"`
}

type IdentityConfig struct {
	PubKey  string `json:"pub_key"`
	PrivKey string `json:"priv_key"`
}

type Secrets struct {
	PrivKeyPass string   `json:"privkey_passphrase"`
	ApiKeys     []string `json:"api_keys"`
	MetricsAuth string   `json:"metrics_auth"`
}

// DefaultServerName is what a fresh install calls itself until the operator sets a title.
const DefaultServerName = "My Music Server"

func LoadConfig() *Config {

	// A missing .env file is fine
	_ = godotenv.Load(envFileName)

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	config.ApplyDefaults()
	return &config
}

// ApplyDefaults fills in zero-valued tuning knobs.
func (cfg *Config) ApplyDefaults() {
	if len(cfg.PlaceholderTitles) == 0 {
		cfg.PlaceholderTitles = []string{"Untitled", DefaultServerName}
	}
	if cfg.TrackKeyScheme == "" {
		cfg.TrackKeyScheme = TrackKeyAudioUrl
	}
	setIfZero(&cfg.ProfileKeepDays, 7)
	setIfZero(&cfg.Crawler.IntervalSec, 600)
	setIfZero(&cfg.Crawler.Parallel, 4)
	setIfZero(&cfg.Crawler.TimeoutSec, 10)
	setIfZero(&cfg.Delivery.Workers, 5)
	setIfZero(&cfg.Delivery.MaxAttempts, 8)
	setIfZero(&cfg.Delivery.BaseBackoffSec, 30)
	setIfZero(&cfg.Delivery.MaxBackoffSec, 6*60*60)
	setIfZero(&cfg.Delivery.TimeoutSec, 10)
	setIfZero(&cfg.Delivery.IdleWakeSec, 5)
}

func setIfZero(val *int, def int) {
	if *val <= 0 {
		*val = def
	}
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
