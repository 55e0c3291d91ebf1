package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizer_Normalize(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name           string
		input          string
		wantNormalized string
		wantWords      int
	}{
		{
			name:           "lowercases and collapses spaces",
			input:          "Senior   Software\tEngineer",
			wantNormalized: "senior software engineer",
			wantWords:      3,
		},
		{
			name:           "empty input",
			input:          "",
			wantNormalized: "",
			wantWords:      0,
		},
		{
			name:           "whitespace only",
			input:          "   \n\t  ",
			wantNormalized: "",
			wantWords:      0,
		},
		{
			name:           "strips control characters",
			input:          "Hello\x00World\x07!",
			wantNormalized: "helloworld!",
			wantWords:      1,
		},
		{
			name:           "windows line endings",
			input:          "Skills\r\nPython",
			wantNormalized: "skills\npython",
			wantWords:      2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := n.Normalize(tt.input)
			assert.Equal(t, tt.wantNormalized, doc.NormalizedText)
			assert.Equal(t, tt.wantWords, doc.WordCount)
		})
	}
}

func TestNormalizer_EmptyInputNeverFails(t *testing.T) {
	doc := NewNormalizer().Normalize("")
	assert.NotNil(t, doc)
	assert.True(t, doc.IsEmpty())
	assert.Equal(t, 0, doc.CharCount)
}
