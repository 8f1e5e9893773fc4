package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ANIMATED_IMAGE_"

// LoadDotEnv loads KEY=VALUE pairs from the given files (default ".env")
// into the process environment. Missing files are ignored; variables already
// set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	present := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}

// ApplyEnv overrides fields from ANIMATED_IMAGE_* variables. Unparseable
// values are skipped and reported by name.
func (c *Config) ApplyEnv() (skipped []string) {
	lookup := func(name string) (string, bool) {
		v := strings.TrimSpace(os.Getenv(EnvPrefix + name))
		return v, v != ""
	}
	setInt := func(name string, dst *int) {
		if v, ok := lookup(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				skipped = append(skipped, EnvPrefix+name)
				return
			}
			*dst = n
		}
	}
	setBool := func(name string, dst *bool) {
		if v, ok := lookup(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				skipped = append(skipped, EnvPrefix+name)
				return
			}
			*dst = b
		}
	}
	setFloat := func(name string, dst *float64) {
		if v, ok := lookup(name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				skipped = append(skipped, EnvPrefix+name)
				return
			}
			*dst = f
		}
	}
	setBool("DEBUG", &c.Debug)
	setInt("WIDTH", &c.Width)
	setInt("HEIGHT", &c.Height)
	setBool("SHOW_FPS", &c.ShowFPS)
	setInt("TARGET_FPS", &c.TargetFPS)
	setInt("REFRESH_HZ", &c.RefreshHz)
	setFloat("BALL_RADIUS", &c.BallRadius)
	setFloat("BALL_SPEED", &c.BallSpeed)
	if v, ok := lookup("BALL_COLOR"); ok {
		if _, err := ParseHexColor(v); err != nil {
			skipped = append(skipped, EnvPrefix+"BALL_COLOR")
		} else {
			c.BallColor = v
		}
	}
	if v, ok := lookup("SOURCE"); ok {
		c.Source = v
	}
	if v, ok := lookup("SOURCE_PATH"); ok {
		c.SourcePath = v
	}
	return skipped
}
