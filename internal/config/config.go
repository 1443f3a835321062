package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SourceConfig struct {
	Enabled     bool     `yaml:"enabled"`
	MaxPostings int      `yaml:"max_postings"`
	Regions     []string `yaml:"regions"` // empty = applicable everywhere
}

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
		Debug   bool   `yaml:"debug"`
		LogJSON bool   `yaml:"log_json"`
	} `yaml:"app"`

	Sources struct {
		LinkedIn  SourceConfig `yaml:"linkedin"`
		Indeed    SourceConfig `yaml:"indeed"`
		Naukri    SourceConfig `yaml:"naukri"`
		TimesJobs SourceConfig `yaml:"timesjobs"`
		Shine     SourceConfig `yaml:"shine"`

		TimeoutSeconds    int     `yaml:"timeout_seconds"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
	} `yaml:"sources"`

	Cache struct {
		TTLMinutes     int `yaml:"ttl_minutes"`
		CleanupMinutes int `yaml:"cleanup_minutes"`
	} `yaml:"cache"`

	Search struct {
		MinResults  int `yaml:"min_results"`
		DirectLimit int `yaml:"direct_limit"`
	} `yaml:"search"`

	Scoring struct {
		MinMatchScore  int `yaml:"min_match_score"`
		TopSkills      int `yaml:"top_skills"`
		MaxRecommended int `yaml:"max_recommended"`
	} `yaml:"scoring"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// indianRegions gates the region-specific boards; Naukri, TimesJobs and
// Shine only carry listings for these locations.
var indianRegions = []string{
	"delhi", "bangalore", "mumbai", "chennai", "hyderabad", "pune", "kolkata",
	"noida", "gurgaon", "ahmedabad", "jaipur", "india",
}

func Default() Config {
	var cfg Config

	cfg.App.Port = 38471
	cfg.App.DataDir = "."

	cfg.Sources.LinkedIn = SourceConfig{Enabled: true, MaxPostings: 15}
	cfg.Sources.Indeed = SourceConfig{Enabled: true, MaxPostings: 15}
	cfg.Sources.Naukri = SourceConfig{Enabled: true, MaxPostings: 5, Regions: indianRegions}
	cfg.Sources.TimesJobs = SourceConfig{Enabled: true, MaxPostings: 5, Regions: indianRegions}
	cfg.Sources.Shine = SourceConfig{Enabled: true, MaxPostings: 5, Regions: indianRegions}
	cfg.Sources.TimeoutSeconds = 20
	cfg.Sources.RequestsPerSecond = 2
	cfg.Sources.Burst = 4

	cfg.Cache.TTLMinutes = 60
	cfg.Cache.CleanupMinutes = 10

	cfg.Search.MinResults = 10
	cfg.Search.DirectLimit = 10

	cfg.Scoring.MinMatchScore = 0
	cfg.Scoring.TopSkills = 5
	cfg.Scoring.MaxRecommended = 10

	return cfg
}
