package vocab

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Load returns the default vocabulary, overridden by the YAML file at path
// when one is given. A path that does not exist or fails to parse is a fatal
// configuration error: the process must not start with a partial vocabulary.
func Load(path string) (*Vocabulary, error) {
	v := defaultVocabulary()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("vocabulary file %s: %w", path, err)
		}

		vp := viper.New()
		vp.SetConfigFile(path)
		vp.SetConfigType("yaml")
		if err := vp.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
		}
		if err := vp.Unmarshal(v); err != nil {
			return nil, fmt.Errorf("failed to unmarshal vocabulary: %w", err)
		}
	}

	if len(v.HardSkills) == 0 || len(v.SoftSkills) == 0 {
		return nil, fmt.Errorf("vocabulary is missing skill lists")
	}

	v.buildSets()
	return v, nil
}

// Default returns the built-in vocabulary. Intended for tests that need a
// real vocabulary without touching the filesystem.
func Default() *Vocabulary {
	v := defaultVocabulary()
	v.buildSets()
	return v
}
