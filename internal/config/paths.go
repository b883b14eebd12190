package config

import (
	"os"
	"path/filepath"
	"strings"
)

const configFileName = "todo.toml"

// userConfigDir is $XDG_CONFIG_HOME/todo, falling back to ~/.config/todo.
func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "todo")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "todo")
}

func findUserConfigFile() string {
	dir := userConfigDir()
	if dir == "" {
		return ""
	}
	return firstFile(filepath.Join(dir, configFileName))
}

func findProjectConfigFile() string {
	return firstFile(configFileName, "."+configFileName)
}

func firstFile(paths ...string) string {
	for _, p := range paths {
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p
		}
	}
	return ""
}

// expandPath expands ~ and environment variables in p.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	expanded := os.ExpandEnv(p)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, strings.TrimPrefix(expanded[1:], "/"))
	}
	return expanded
}
