// Package gamehome locates and validates a Slay the Spire installation.
package gamehome

import (
	"path/filepath"
	"runtime"

	"github.com/NielsdaWheelz/seedsearch/internal/errors"
	"github.com/NielsdaWheelz/seedsearch/internal/fs"
)

// DefaultDir is the Steam install location on Windows.
const DefaultDir = "C:/Program Files (x86)/Steam/steamapps/common/SlayTheSpire/"

// modTheSpireRel is the ModTheSpire workshop jar relative to steamapps.
var modTheSpireRel = filepath.Join("workshop", "content", "646570", "1605060445", "ModTheSpire.jar")

// SearchConfigFile is the SeedSearch config file name inside the install dir.
const SearchConfigFile = "searchConfig.json"

// Home is a validated installation.
type Home struct {
	Dir         string
	Java        string
	ModTheSpire string
}

// Overrides replaces discovered paths. Empty fields keep the default.
type Overrides struct {
	Java        string
	ModTheSpire string
}

// Resolve validates dir as a game install and locates the bundled java
// runtime and the ModTheSpire jar.
func Resolve(fsys fs.FS, dir string, o Overrides) (Home, error) {
	return resolve(fsys, dir, o, runtime.GOOS)
}

func resolve(fsys fs.FS, dir string, o Overrides, goos string) (Home, error) {
	dir = filepath.Clean(dir)
	if !fs.IsDir(fsys, dir) {
		return Home{}, errors.NewWithDetails(errors.EInvalidHome, "game directory not found",
			map[string]string{"path": dir, "hint": "pass --home or set home in config.yaml"})
	}

	java := o.Java
	if java == "" {
		java = filepath.Join(dir, BundledJava(goos))
	}
	if !fs.IsFile(fsys, java) {
		return Home{}, errors.NewWithDetails(errors.EInvalidJava, "java runtime not found",
			map[string]string{"path": java, "home": dir, "hint": "pass --java to use another runtime"})
	}

	mts := o.ModTheSpire
	if mts == "" {
		// <steamapps>/common/SlayTheSpire -> <steamapps>/workshop/...
		mts = filepath.Join(filepath.Dir(filepath.Dir(dir)), modTheSpireRel)
	}
	if !fs.IsFile(fsys, mts) {
		return Home{}, errors.NewWithDetails(errors.EInvalidModTheSpire, "ModTheSpire.jar not found",
			map[string]string{"path": mts, "home": dir, "hint": "subscribe to ModTheSpire on the Steam workshop or pass --mod-the-spire"})
	}

	return Home{Dir: dir, Java: java, ModTheSpire: mts}, nil
}

// BundledJava is the java executable shipped with the game, relative to the install dir.
func BundledJava(goos string) string {
	if goos == "windows" {
		return filepath.Join("jre", "bin", "javaw.exe")
	}
	return filepath.Join("jre", "bin", "java")
}

// SearchConfigPath returns the path of searchConfig.json for this install.
func (h Home) SearchConfigPath() string {
	return filepath.Join(h.Dir, SearchConfigFile)
}
