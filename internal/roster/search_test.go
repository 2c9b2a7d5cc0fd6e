package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty", query: "", want: []string{}},
		{name: "whitespace", query: "   ", want: []string{}},
		{name: "single", query: "alice", want: []string{"alice"}},
		{name: "ascii comma", query: "ab,cd", want: []string{"ab", "cd"}},
		{name: "ideographic comma", query: "田中、佐藤", want: []string{"田中", "佐藤"}},
		{name: "fullwidth comma", query: "ab，cd", want: []string{"ab", "cd"}},
		{name: "trims terms", query: " ab , cd ", want: []string{"ab", "cd"}},
		{name: "drops empty terms", query: "ab,,  ,cd,", want: []string{"ab", "cd"}},
		{name: "keeps inner spaces", query: "Mary Ann", want: []string{"Mary Ann"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuery(tt.query))
		})
	}
}

func TestMatchesTerms(t *testing.T) {
	assert.True(t, MatchesTerms("anything", nil))
	assert.True(t, MatchesTerms("abc", []string{"zz", "bc"}))
	assert.False(t, MatchesTerms("abc", []string{"ABC"}))
	assert.False(t, MatchesTerms("z", []string{"ab", "cd"}))
}
