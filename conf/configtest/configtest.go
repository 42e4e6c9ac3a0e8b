// Package configtest helps tests run against a known default configuration.
package configtest

import "github.com/AsthaPitambarwale/music-mood-dj/conf"

// SetupConfig loads the default configuration and returns a function that
// restores whatever was in place before.
func SetupConfig() func() {
	prev := *conf.Server
	_ = conf.Load()
	return func() { *conf.Server = prev }
}
