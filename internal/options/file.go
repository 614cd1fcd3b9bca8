package options

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileOptions mirrors the cfgen.yaml project-defaults file. Every field is a
// pointer so that an absent key leaves the built-in default untouched.
type fileOptions struct {
	Python        *bool   `yaml:"python"`
	Visualization *bool   `yaml:"visualization"`
	CAPI          *bool   `yaml:"capi"`
	CAPIFramework *bool   `yaml:"capi-framework"`
	RemoteFS      *bool   `yaml:"remotefs"`
	SizeOpt       *bool   `yaml:"release-opt-for-size"`
	SystemCMake   *bool   `yaml:"system-cmake"`
	CCache        *bool   `yaml:"ccache"`
	Virtualenv    *string `yaml:"virtualenv"`

	ExtraDefines []string `yaml:"defines"`
}

// LoadFile overlays cfgen.yaml from path onto cfg. A missing file is not an
// error; a malformed one is a fatal ConfigError.
func LoadFile(path string, cfg Config) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	var f fileOptions
	if err := yaml.Unmarshal(data, &f); err != nil {
		return cfg, &ConfigError{Token: path, Reason: fmt.Sprintf("invalid defaults file: %v", err)}
	}
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	setBool(&cfg.Python, f.Python)
	setBool(&cfg.Viewer, f.Visualization)
	setBool(&cfg.CAPI, f.CAPI)
	setBool(&cfg.CAPIFramework, f.CAPIFramework)
	setBool(&cfg.RemoteFS, f.RemoteFS)
	setBool(&cfg.SizeOpt, f.SizeOpt)
	setBool(&cfg.SystemCMake, f.SystemCMake)
	setBool(&cfg.CCache, f.CCache)
	if f.Virtualenv != nil {
		cfg.Virtualenv = *f.Virtualenv
	}
	cfg.ExtraDefines = append(cfg.ExtraDefines, f.ExtraDefines...)
	return cfg, nil
}
