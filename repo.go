package pathwalk

import (
	"os"
	"path/filepath"

	"github.com/cthing/pathwalk/internal/gitconfig"
	"github.com/cthing/pathwalk/internal/pathutil"
)

// containsRepoMarker reports whether dir/.git exists and is a directory.
func containsRepoMarker(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}

// repoExcludeFile returns dir/.git/info/exclude if it is a readable file.
func repoExcludeFile(dir string) (string, bool) {
	return readableFile(filepath.Join(dir, ".git", "info", "exclude"))
}

// localIgnoreFile returns dir/.gitignore if it is a readable file.
func localIgnoreFile(dir string) (string, bool) {
	return readableFile(filepath.Join(dir, ".gitignore"))
}

// findGlobalConfigFile returns the first readable of $HOME/.gitconfig,
// $XDG_CONFIG_HOME/git/config (if XDG_CONFIG_HOME is set and non-empty), or
// $HOME/.config/git/config.
func findGlobalConfigFile() (string, bool) {
	home := os.Getenv("HOME")
	if home != "" {
		if p, ok := readableFile(filepath.Join(home, ".gitconfig")); ok {
			return p, true
		}
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		if p, ok := readableFile(filepath.Join(xdg, "git", "config")); ok {
			return p, true
		}
	} else if home != "" {
		if p, ok := readableFile(filepath.Join(home, ".config", "git", "config")); ok {
			return p, true
		}
	}
	return "", false
}

// expandTilde replaces a leading "~/" with $HOME/, otherwise returns s
// unchanged.
func expandTilde(s string) string {
	return pathutil.ExpandTilde(s, os.Getenv("HOME"))
}

// globalConfigSettings reads the two keys the walker consumes from the
// user's global Git configuration: core.excludesFile (tilde-expanded) and
// core.ignoreCase. A missing config file yields the zero-value defaults
// with no error.
func globalConfigSettings() (excludesFile string, ignoreCase bool, err error) {
	path, ok := findGlobalConfigFile()
	if !ok {
		return "", false, nil
	}
	cfg, err := gitconfig.Load(path)
	if err != nil {
		return "", false, newMatchError("could not read global config", err)
	}
	if v, ok := cfg.Get("core", "", "excludesFile"); ok {
		excludesFile = expandTilde(v)
	}
	ignoreCase, err = cfg.GetBool("core", "", "ignoreCase", false)
	if err != nil {
		return "", false, newMatchError("invalid boolean in global config", err)
	}
	return excludesFile, ignoreCase, nil
}

func readableFile(path string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}
