// Package assets locates the static files served by the HTTP front end.
package assets

import (
	"os"
	"path/filepath"

	"github.com/bionicotaku/lingo-services-hello/internal/infrastructure/configloader"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

const dirName = "assets"

// ProviderSet wires the assets locator.
var ProviderSet = wire.NewSet(NewLocator)

// Locator points at the resolved assets directory and its index file.
type Locator struct {
	dir   string
	index string
}

// NewLocator resolves the assets directory once at startup.
func NewLocator(cfg configloader.AssetsConfig, logger log.Logger) *Locator {
	index := cfg.Index
	if index == "" {
		index = "index.html"
	}
	l := &Locator{dir: ResolveDir(cfg.Dir), index: index}
	log.NewHelper(logger).Infof("asset_path %s", l.dir)
	return l
}

// ResolveDir picks the assets directory.
// An explicit directory wins; otherwise ./assets under the working directory when it
// exists, else assets/ next to the running executable (not checked for existence).
func ResolveDir(explicit string) string {
	if explicit != "" {
		return filepath.Clean(explicit)
	}
	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, dirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	exeDir := "."
	if exe, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exe)
	}
	return filepath.Join(exeDir, dirName)
}

// Dir returns the resolved assets directory.
func (l *Locator) Dir() string {
	return l.dir
}

// IndexPath returns the absolute location of the index asset.
func (l *Locator) IndexPath() string {
	return filepath.Join(l.dir, l.index)
}
