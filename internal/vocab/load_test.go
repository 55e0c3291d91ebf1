package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, v.HardSkills)
	assert.NotEmpty(t, v.SoftSkills)
	assert.NotEmpty(t, v.Stopwords)
	assert.NotEmpty(t, v.Sections.All)
	assert.NotEmpty(t, v.DegreeLevels)

	assert.True(t, v.IsHardSkill("python"))
	assert.True(t, v.IsSoftSkill("leadership"))
	assert.True(t, v.IsStopword("the"))
	assert.False(t, v.IsHardSkill("the"))
}

func TestLoad_YAMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	content := `hard_skills:
  - cobol
  - fortran
synonyms:
  "legacy cobol": cobol
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"cobol", "fortran"}, v.HardSkills)
	assert.True(t, v.IsHardSkill("cobol"))
	assert.False(t, v.IsHardSkill("python"))
	assert.Equal(t, "cobol", v.Synonyms["legacy cobol"])

	// Sections not present in the file keep their defaults.
	assert.NotEmpty(t, v.SoftSkills)
	assert.NotEmpty(t, v.Stopwords)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hard_skills: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_EmptySkillLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hard_skills: []\nsoft_skills: []\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing skill lists")
}

func TestDegreeName(t *testing.T) {
	assert.Equal(t, "Doctorate", DegreeName(5))
	assert.Equal(t, "Bachelor's", DegreeName(3))
	assert.Equal(t, "Unknown", DegreeName(0))
}
