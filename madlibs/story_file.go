package madlibs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type storyFile struct {
	Prompts  []string `yaml:"prompts"`
	Template string   `yaml:"template"`
}

// LoadStory reads a story from a YAML file with prompts and template keys.
// An empty path yields DefaultStory.
func LoadStory(path string) (Story, error) {
	if path == "" {
		return DefaultStory(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Story{}, fmt.Errorf("read story: %w", err)
	}

	var f storyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Story{}, fmt.Errorf("parse story %s: %w", path, err)
	}

	if strings.TrimSpace(f.Template) == "" {
		return Story{}, errors.New("story template is empty")
	}
	if len(f.Prompts) == 0 {
		return Story{}, errors.New("story declares no prompts")
	}

	return NewStory(f.Prompts, f.Template), nil
}
