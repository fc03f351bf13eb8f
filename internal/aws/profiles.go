package aws

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go/aws/defaults"
	"gopkg.in/ini.v1"
)

// ListProfiles returns the sorted names of the profiles defined in the shared
// credentials and config files. Missing files are not an error.
func ListProfiles() ([]string, error) {
	credsPath := os.Getenv("AWS_SHARED_CREDENTIALS_FILE")
	if credsPath == "" {
		credsPath = defaults.SharedCredentialsFilename()
	}

	configPath := os.Getenv("AWS_CONFIG_FILE")
	if configPath == "" {
		configPath = defaults.SharedConfigFilename()
	}

	profiles := make(map[string]struct{})

	if err := collectProfiles(profiles, credsPath, ""); err != nil {
		return nil, fmt.Errorf("failed to load credentials file: %w", err)
	}
	// Sections of the config file are named "profile <name>", except for "default"
	if err := collectProfiles(profiles, configPath, "profile "); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Convert map to sorted slice
	result := make([]string, 0, len(profiles))
	for profile := range profiles {
		result = append(result, profile)
	}
	sort.Strings(result)

	return result, nil
}

func collectProfiles(profiles map[string]struct{}, path, prefix string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return err
	}

	for _, section := range file.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			continue
		}
		if prefix != "" {
			name = strings.TrimSpace(strings.TrimPrefix(name, prefix))
		}
		if name == "" || strings.HasPrefix(name, "sso-session ") {
			continue
		}
		profiles[name] = struct{}{}
	}
	return nil
}

// ProfileExists reports whether name is defined in the shared credentials or config file
func ProfileExists(name string) (bool, error) {
	profiles, err := ListProfiles()
	if err != nil {
		return false, err
	}
	i := sort.SearchStrings(profiles, name)
	return i < len(profiles) && profiles[i] == name, nil
}
