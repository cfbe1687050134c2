package site

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the site's editorial configuration: identity, navigation
// and which sections the home page shows. Runtime settings (ports,
// credentials, upstream endpoints) stay in environment variables.
type Config struct {
	Title    string   `yaml:"title"`
	Tagline  string   `yaml:"tagline"`
	Nav      []Link   `yaml:"nav"`
	Social   []Link   `yaml:"social"`
	Sections Sections `yaml:"sections"`
	Contact  Contact  `yaml:"contact"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type Sections struct {
	Events  Section `yaml:"events"`
	Videos  Section `yaml:"videos"`
	Contact Section `yaml:"contact"`
}

// Section controls one home page section. A disabled section is left
// out of the rendered page entirely and its loader never runs.
type Section struct {
	Enabled bool   `yaml:"enabled"`
	Heading string `yaml:"heading"`
}

type Contact struct {
	Recipient string `yaml:"recipient"`
}

// Default is the configuration used when no site.yaml exists.
func Default() Config {
	return Config{
		Title:   "Midland",
		Tagline: "Offizielle Website",
		Nav: []Link{
			{Label: "Termine", URL: "#events"},
			{Label: "Videos", URL: "#videos"},
			{Label: "Kontakt", URL: "#contact"},
		},
		Sections: Sections{
			Events:  Section{Enabled: true, Heading: "Termine"},
			Videos:  Section{Enabled: true, Heading: "Videos"},
			Contact: Section{Enabled: true, Heading: "Kontakt"},
		},
	}
}

// Load reads the configuration file at path. A missing file is not an
// error: the site runs with defaults. A file that exists but does not
// parse is an operator mistake and fails loudly.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read site config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse site config: %w", err)
	}
	return cfg, nil
}
