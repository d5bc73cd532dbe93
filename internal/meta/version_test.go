package meta

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFprint(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Fprint(&buf, "linecount")
	out := buf.String()
	assert.Contains(t, out, "linecount version "+Version())
	assert.Contains(t, out, "commit: "+Commit())
	assert.Contains(t, out, "built:  "+Date())
}

func TestVersionNeverEmpty(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, Version())
	assert.NotEmpty(t, Commit())
	assert.NotEmpty(t, Date())
	assert.LessOrEqual(t, len(Commit()), 7)
}
