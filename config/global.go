package config

// Default store and loader behind the package-level
// functions. Components that want explicit wiring construct
// their own Store and Loader instead.
var (
	defaultStore  = NewStore()
	defaultLoader = &Loader{Store: defaultStore}
)

// Init initializes the default configuration from a template
// string. See Loader.Init.
func Init(
	text string,
	vars map[string]interface{},
) error {
	return defaultLoader.Init(text, vars)
}

// InitFromFile initializes the default configuration from a
// template file. See Loader.InitFromFile.
func InitFromFile(
	path string,
	vars map[string]interface{},
) error {
	return defaultLoader.InitFromFile(path, vars)
}

// Get returns a deep copy of the value under the given key
// path in the default configuration. See Store.Get.
func Get(keys ...string) (interface{}, error) {
	return defaultStore.Get(keys...)
}

// HasKey reports whether the given key path resolves in the
// default configuration. See Store.HasKey.
func HasKey(keys ...string) (bool, error) {
	return defaultStore.HasKey(keys...)
}

// Reset returns the default configuration to the
// uninitialized state. Intended for test teardown.
func Reset() {
	defaultStore.Reset()
}
