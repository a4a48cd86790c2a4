// Package yaml loads site profiles from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"
	"time"

	"github.com/fwojciec/arcdoc"
	"gopkg.in/yaml.v3"
)

// fileProfile is the YAML document shape. Every field is optional; a
// field left unset keeps the default profile's value.
type fileProfile struct {
	Name            string   `yaml:"name"`
	BaseURL         string   `yaml:"baseUrl"`
	Seeds           []string `yaml:"seeds"`
	ContentSelector string   `yaml:"contentSelector"`
	SkipExtensions  []string `yaml:"skipExtensions"`
	DelaySeconds    *float64 `yaml:"delaySeconds"`
	MaxPages        int      `yaml:"maxPages"`
	OutputDir       string   `yaml:"outputDir"`
	Services        []string `yaml:"services"`
}

// LoadProfile reads a site profile from a YAML file and merges it over
// the defaults: fields the file sets override, everything else keeps
// the default profile's values. Unknown keys are rejected so a typoed
// field cannot silently fall back to a default. Returns ENOTFOUND if
// the file does not exist.
func LoadProfile(path string) (*arcdoc.SiteProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, arcdoc.Errorf(arcdoc.ENOTFOUND, "profile not found: %s", path)
		}
		return nil, err
	}

	var fp fileProfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fp); err != nil && !errors.Is(err, io.EOF) {
		return nil, arcdoc.Errorf(arcdoc.EINVALID, "invalid profile %s: %v", path, err)
	}

	profile := arcdoc.DefaultProfile()
	if fp.Name != "" {
		profile.Name = fp.Name
	}
	if fp.BaseURL != "" {
		profile.BaseURL = fp.BaseURL
	}
	if len(fp.Seeds) > 0 {
		profile.Seeds = fp.Seeds
	}
	if fp.ContentSelector != "" {
		profile.ContentSelector = fp.ContentSelector
	}
	if len(fp.SkipExtensions) > 0 {
		profile.SkipExtensions = fp.SkipExtensions
	}
	if fp.DelaySeconds != nil {
		profile.Delay = time.Duration(*fp.DelaySeconds * float64(time.Second))
	}
	if fp.MaxPages != 0 {
		profile.MaxPages = fp.MaxPages
	}
	if fp.OutputDir != "" {
		profile.OutputDir = fp.OutputDir
	}
	if len(fp.Services) > 0 {
		profile.Services = fp.Services
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}
