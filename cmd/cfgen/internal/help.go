package internal

const usage = `Usage: cfgen [options]

Configures the release and debug build trees of the project in the current
directory. With no options a full default configuration is produced.

Features:
  --with-python / --no-python              Python bindings (default: on)
  --with-visualization / --no-visualization
                                           visualization client (default: on)
  --with-capi / --no-capi                  C API (default: on)
  --with-capi-framework                    build the C API as a framework
  --with-remotefs / --no-remotefs          remote filesystem support (default: on)
  --target-ios                             configure for iOS (disables Python,
                                           enables the C API, optimizes for size)
  --release-opt-for-size                   optimize the release tree for size

Toolchain:
  --with-system-cmake / --no-system-cmake  prefer the system cmake (default: on)
  --with-ccache / --no-ccache              wrap compilers in ccache (default: on)
  --virtualenv <path>                      Python virtualenv to use
  --install-python-toolchain               install the Python toolchain first

Other:
  -D <key=value>                           extra cmake definition (repeatable)
  --cleanup                                remove build trees and local prefix
  --yes                                    skip confirmation prompts
  --verbose                                verbose output
  --help                                   show this help
`
