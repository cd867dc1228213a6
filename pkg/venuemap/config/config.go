package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
	"github.com/spf13/viper"
)

const (
	FileName  = "venuemap"
	EnvPrefix = "VENUEMAP"

	VenueModeHosted = "hosted"
	VenueModeLocal  = "local"
)

type Config struct {
	Listen    string `mapstructure:"listen"`
	PublicURL string `mapstructure:"publicUrl"`
	LogLevel  string `mapstructure:"logLevel"`
	LogFormat string `mapstructure:"logFormat"`

	Map      MapConfig      `mapstructure:"map"`
	Venues   VenuesConfig   `mapstructure:"venues"`
	Icon     IconConfig     `mapstructure:"icon"`
	Boundary BoundaryConfig `mapstructure:"boundary"`
	Hover    HoverConfig    `mapstructure:"hover"`
	Style    StyleConfig    `mapstructure:"style"`
}

type MapConfig struct {
	AccessToken string     `mapstructure:"accessToken"`
	BaseStyle   string     `mapstructure:"baseStyle"`
	Home        HomeConfig `mapstructure:"home"`
}

type HomeConfig struct {
	Longitude float64 `mapstructure:"longitude"`
	Latitude  float64 `mapstructure:"latitude"`
	Zoom      float64 `mapstructure:"zoom"`
}

type VenuesConfig struct {
	Mode          string  `mapstructure:"mode"`
	SourceID      string  `mapstructure:"sourceId"`
	URL           string  `mapstructure:"url"`
	SourceLayer   string  `mapstructure:"sourceLayer"`
	LayerID       string  `mapstructure:"layerId"`
	CircleOpacity float64 `mapstructure:"circleOpacity"`
	Database      string  `mapstructure:"database"`
}

type IconConfig struct {
	Path       string  `mapstructure:"path"`
	Name       string  `mapstructure:"name"`
	LayerID    string  `mapstructure:"layerId"`
	Size       float64 `mapstructure:"size"`
	MarkerType string  `mapstructure:"markerType"`
}

type BoundaryConfig struct {
	Path         string  `mapstructure:"path"`
	SourceID     string  `mapstructure:"sourceId"`
	LayerID      string  `mapstructure:"layerId"`
	FillColor    string  `mapstructure:"fillColor"`
	FillOpacity  float64 `mapstructure:"fillOpacity"`
	OutlineColor string  `mapstructure:"outlineColor"`
}

type HoverConfig struct {
	ClearOnEmpty bool `mapstructure:"clearOnEmpty"`
}

type StyleConfig struct {
	DefaultRadius  float64             `mapstructure:"defaultRadius"`
	DefaultColor   string              `mapstructure:"defaultColor"`
	HighlightColor string              `mapstructure:"highlightColor"`
	Categories     []entities.Category `mapstructure:"categories"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:8080")
	v.SetDefault("publicUrl", "http://localhost:8080")
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFormat", "text")

	v.SetDefault("map.accessToken", "")
	v.SetDefault("map.baseStyle", "mapbox://styles/mapbox/dark-v11")
	v.SetDefault("map.home.longitude", -79.3832)
	v.SetDefault("map.home.latitude", 43.6532)
	v.SetDefault("map.home.zoom", 12)

	v.SetDefault("venues.mode", VenueModeHosted)
	v.SetDefault("venues.sourceId", "radius3-locations")
	v.SetDefault("venues.url", "mapbox://zoezhuoli.bngr19y3")
	v.SetDefault("venues.sourceLayer", "points-2mn1e9")
	v.SetDefault("venues.layerId", "radius3-layer")
	v.SetDefault("venues.circleOpacity", 0.1)
	v.SetDefault("venues.database", "venues.db")

	v.SetDefault("icon.path", "school.png")
	v.SetDefault("icon.name", "school-icon")
	v.SetDefault("icon.layerId", "toronto-marker")
	v.SetDefault("icon.size", 0.05)
	v.SetDefault("icon.markerType", "Center")

	v.SetDefault("boundary.path", "Polygon.geojson")
	v.SetDefault("boundary.sourceId", "range-3km")
	v.SetDefault("boundary.layerId", "range-layer")
	v.SetDefault("boundary.fillColor", "#00FFFF")
	v.SetDefault("boundary.fillOpacity", 0.08)
	v.SetDefault("boundary.outlineColor", "#00FFFF")

	v.SetDefault("hover.clearOnEmpty", false)

	v.SetDefault("style.defaultRadius", 10)
	v.SetDefault("style.defaultColor", "#ccc")
	v.SetDefault("style.highlightColor", "#ffffff")
	v.SetDefault("style.categories", []map[string]any{
		{"label": "Comedy club", "radius": 6, "color": "#e73649"},
		{"label": "Cultural center", "radius": 8, "color": "#ee7d09"},
		{"label": "Concert hall", "radius": 10, "color": "#f8bd00"},
		{"label": "Opera house", "radius": 12, "color": "#96c535"},
		{"label": "Event venue", "radius": 14, "color": "#00a496"},
		{"label": "Movie theater", "radius": 16, "color": "#0091d8"},
		{"label": "Live music venue", "radius": 18, "color": "#d45f9d"},
		{"label": "Performing arts theater", "radius": 8, "color": "#844aa8"},
	})
}

// Load reads venuemap.json from configDir if present, applies VENUEMAP_*
// environment overrides and fills in defaults for everything else.
func Load(configDir string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}

	if cfg.Venues.Mode != VenueModeHosted && cfg.Venues.Mode != VenueModeLocal {
		return Config{}, fmt.Errorf("venues.mode must be %q or %q, got %q", VenueModeHosted, VenueModeLocal, cfg.Venues.Mode)
	}

	return cfg, nil
}
