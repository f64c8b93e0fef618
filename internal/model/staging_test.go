package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStagingPlan_Count(t *testing.T) {
	plan := StagingPlan{
		Root: "www/",
		Files: []StagedFile{
			{File: File{Path: "www/js/app.js"}, Class: Instrumentable},
			{File: File{Path: "www/js/util.js"}, Class: Instrumentable},
			{File: File{Path: "www/bower_components/x.js"}, Class: Excluded, Pattern: "www/bower_components/**"},
			{File: File{Path: "www/index.html"}, Class: Copied},
		},
	}

	assert.Equal(t, 2, plan.Count(Instrumentable))
	assert.Equal(t, 1, plan.Count(Excluded))
	assert.Equal(t, 1, plan.Count(Copied))
}

func TestFileClass_String(t *testing.T) {
	assert.Equal(t, "instrument", Instrumentable.String())
	assert.Equal(t, "excluded", Excluded.String())
	assert.Equal(t, "copied", Copied.String())
	assert.Equal(t, "unknown", FileClass(42).String())
}

func TestCommand_Argv(t *testing.T) {
	cmd := Command{Name: "nyc", Args: []string{"merge", "a", "b"}}

	assert.Equal(t, []string{"nyc", "merge", "a", "b"}, cmd.Argv())
	assert.Equal(t, []string{"npm"}, Command{Name: "npm"}.Argv())
}
