package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// docsDirCandidates are common build output directories, in order of preference.
var docsDirCandidates = []string{
	"docs/build/html",
	"build/html",
	"_build/html",
	"site",
	"public",
}

// detectDocsDir returns the first existing build output directory, or the default.
func detectDocsDir() string {
	for _, dir := range docsDirCandidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return DefaultConfig().DocsDir
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to fragredirect! Let's configure your documentation site.")
	fmt.Println()

	if _, err := os.Stat(path); err == nil {
		confirm := promptui.Prompt{
			Label:     fmt.Sprintf("%s already exists. Overwrite", path),
			IsConfirm: true,
		}
		if _, err := confirm.Run(); err != nil {
			return nil, fmt.Errorf("keeping existing %s", path)
		}
	}

	cfg := DefaultConfig()

	// 1. Built site directory.
	docsPrompt := promptui.Prompt{
		Label:   "Directory containing the built HTML documentation",
		Default: detectDocsDir(),
	}
	docsDir, err := docsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("docs dir: %w", err)
	}
	cfg.DocsDir = docsDir

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port for fragredirect serve",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || !validPort(n) {
				return errors.New("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 3. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if excludeStr != "" {
		cfg.Exclude = append(cfg.Exclude, splitAndTrim(excludeStr)...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
