package options

import (
	"strings"

	"github.com/forgebuild/cfgen/internal/cmake"
)

// Defines renders the configuration into the ordered definition list passed
// to cmake. The project's CMakeLists requires explicit ON/OFF for the main
// feature gates, so both states are always emitted. Rendering is a pure
// function of the configuration.
func (c *Config) Defines() []cmake.Define {
	defs := []cmake.Define{
		cmake.Bool("ENABLE_PYTHON", c.Python),
		cmake.Bool("ENABLE_VIEWER", c.Viewer),
		cmake.Bool("ENABLE_CAPI", c.CAPI),
	}
	if c.CAPI {
		defs = append(defs, cmake.Bool("CAPI_FRAMEWORK", c.CAPIFramework))
		if c.IOS {
			defs = append(defs, cmake.Bool("CAPI_IOS", true))
		}
	}
	defs = append(defs, cmake.Bool("ENABLE_REMOTEFS", c.RemoteFS))
	if !c.RemoteFS {
		// remotefs is the only curl consumer; drop the dependency entirely.
		defs = append(defs, cmake.Bool("USE_CURL", false))
	}
	defs = append(defs, cmake.Bool("OPTIMIZE_FOR_SIZE", c.SizeOpt))
	if c.IOS {
		defs = append(defs, cmake.Bool("PLATFORM_IOS", true))
	}
	if c.Python && c.Virtualenv != "" {
		defs = append(defs, cmake.String("PYTHON_VIRTUALENV", c.Virtualenv))
	}
	for _, kv := range c.ExtraDefines {
		key, value, _ := strings.Cut(kv, "=")
		defs = append(defs, cmake.Define{Key: key, Value: value})
	}
	return defs
}
