// Package options resolves the user-facing flag surface into the build
// configuration passed to cmake.
package options

import "fmt"

// Config is the resolved build configuration. It is constructed once by
// Parse and read-only afterwards.
type Config struct {
	Python        bool
	Viewer        bool // visualization client
	CAPI          bool
	CAPIFramework bool
	RemoteFS      bool
	IOS           bool
	SizeOpt       bool
	SystemCMake   bool
	CCache        bool

	Virtualenv   string
	ExtraDefines []string // raw key=value pairs, in the order given

	// Actions and shell switches.
	Cleanup       bool
	InstallPython bool
	AssumeYes     bool
	Help          bool
	Verbose       bool
}

// Default returns the configuration produced by a no-argument invocation.
func Default() Config {
	return Config{
		Python:      true,
		Viewer:      true,
		CAPI:        true,
		RemoteFS:    true,
		SystemCMake: true,
		CCache:      true,
	}
}

// ConfigError is a fatal configuration error. Token names the flag at fault.
type ConfigError struct {
	Token  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("unknown option: %s", e.Token)
	}
	return fmt.Sprintf("%s: %s", e.Token, e.Reason)
}

// override is one forced option assignment triggered by a flag.
type override struct {
	set func(*Config, bool)
	val bool
}

// flagOverrides lists every flag that forces other options as a side effect.
// Overrides apply at the moment the flag is consumed, so a later explicit
// flag still wins.
var flagOverrides = map[string][]override{
	"--target-ios": {
		{func(c *Config, v bool) { c.Python = v }, false},
		{func(c *Config, v bool) { c.CAPI = v }, true},
		{func(c *Config, v bool) { c.SizeOpt = v }, true},
	},
	"--with-capi-framework": {
		{func(c *Config, v bool) { c.CAPI = v }, true},
	},
}

// boolFlags maps simple toggles to their assignment.
var boolFlags = map[string]func(*Config){
	"--with-python":              func(c *Config) { c.Python = true },
	"--no-python":                func(c *Config) { c.Python = false },
	"--with-visualization":       func(c *Config) { c.Viewer = true },
	"--no-visualization":         func(c *Config) { c.Viewer = false },
	"--with-capi":                func(c *Config) { c.CAPI = true },
	"--with-capi-framework":      func(c *Config) { c.CAPIFramework = true },
	"--no-capi":                  func(c *Config) { c.CAPI = false },
	"--with-remotefs":            func(c *Config) { c.RemoteFS = true },
	"--no-remotefs":              func(c *Config) { c.RemoteFS = false },
	"--with-ccache":              func(c *Config) { c.CCache = true },
	"--no-ccache":                func(c *Config) { c.CCache = false },
	"--with-system-cmake":        func(c *Config) { c.SystemCMake = true },
	"--no-system-cmake":          func(c *Config) { c.SystemCMake = false },
	"--release-opt-for-size":     func(c *Config) { c.SizeOpt = true },
	"--target-ios":               func(c *Config) { c.IOS = true },
	"--cleanup":                  func(c *Config) { c.Cleanup = true },
	"--install-python-toolchain": func(c *Config) { c.InstallPython = true },
	"--yes":                      func(c *Config) { c.AssumeYes = true },
	"--help":                     func(c *Config) { c.Help = true },
	"--verbose":                  func(c *Config) { c.Verbose = true },
}

// Parse resolves flag tokens on top of base, in a single ordered pass.
// Later flags win over earlier ones; -D definitions accumulate.
func Parse(tokens []string, base Config) (Config, error) {
	cfg := base
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok {
		case "--virtualenv":
			val, ok := next(tokens, &i)
			if !ok {
				return cfg, &ConfigError{Token: tok, Reason: "missing path argument"}
			}
			cfg.Virtualenv = val
		case "-D":
			val, ok := next(tokens, &i)
			if !ok {
				return cfg, &ConfigError{Token: tok, Reason: "missing key=value argument"}
			}
			cfg.ExtraDefines = append(cfg.ExtraDefines, val)
		default:
			set, ok := boolFlags[tok]
			if !ok {
				return cfg, &ConfigError{Token: tok}
			}
			set(&cfg)
			for _, o := range flagOverrides[tok] {
				o.set(&cfg, o.val)
			}
		}
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func next(tokens []string, i *int) (string, bool) {
	if *i+1 >= len(tokens) {
		return "", false
	}
	*i++
	return tokens[*i], true
}

func (c *Config) validate() error {
	if c.Python && !c.Viewer {
		return &ConfigError{
			Token:  "--with-python",
			Reason: "python bindings require the visualization client (remove --no-visualization or pass --no-python)",
		}
	}
	return nil
}
