// This file is part of Wormy.
//
// Wormy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Wormy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Wormy.  If not, see <https://www.gnu.org/licenses/>.

// Package paths finds the configuration file and the assets used by the game.
//
// Files are looked for in the resource directory. If a directory called
// ".wormy" is present in the current directory then that is the resource
// directory. Otherwise the resource directory is "wormy" in the user's config
// directory. On a modern Linux system that is:
//
//	/home/user/.config/wormy/
package paths

import (
	"os"
	"path/filepath"
)

// the base path for all resources. use getBasePath() rather than this value
const baseResourcePath = ".wormy"

// ConfigFile is the name of the configuration file in the resource directory.
const ConfigFile = "config.yaml"

// ResourcePath returns the resource prepended with the resource directory. The
// existence of the resource is not checked.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(home, baseResourcePath[1:])
}

// Find returns filename unchanged if it exists. If it doesn't exist but is
// present in the resource directory then that path is returned instead.
//
// If the file can't be found anywhere filename is returned unchanged, so that
// the error reported when it is opened names the file that was asked for.
func Find(filename string) string {
	if filename == "" || filepath.IsAbs(filename) {
		return filename
	}
	if _, err := os.Stat(filename); err == nil {
		return filename
	}

	p := ResourcePath(filename)
	if _, err := os.Stat(p); err == nil {
		return p
	}

	return filename
}

// DefaultConfig returns the path to the configuration file in the resource
// directory, or the empty string if there isn't one.
func DefaultConfig() string {
	p := ResourcePath(ConfigFile)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}
