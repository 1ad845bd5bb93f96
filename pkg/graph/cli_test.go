package graph_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"misc_tool/pkg/errorutil"
	"misc_tool/pkg/graph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const triangle = `graph G {
	a -- b [weight=3];
	b -- c [weight=1];
	c -- a [weight=2];
	d;
}`

func TestAnalyze(t *testing.T) {
	doc, err := graph.Analyze(triangle, graph.ModeComponents)
	require.NoError(t, err)
	assert.Equal(t, int64(2), gjson.Get(doc, "count").Int())
	assert.Equal(t, `[["a","b","c"],["d"]]`, gjson.Get(doc, "components").Raw)

	doc, err = graph.Analyze(triangle, graph.ModeRedundant)
	require.NoError(t, err)
	assert.Equal(t, "c", gjson.Get(doc, "redundant.0.src").String())
	assert.Equal(t, "a", gjson.Get(doc, "redundant.0.dst").String())

	doc, err = graph.Analyze(triangle, graph.ModeMST)
	require.NoError(t, err)
	assert.Equal(t, float64(3), gjson.Get(doc, "total").Float())
	assert.Equal(t, int64(2), gjson.Get(doc, "edges.#").Int())

	_, err = graph.Analyze(`graph {`, graph.ModeComponents)
	assert.Equal(t, errorutil.CodeInvalidData, errorutil.ExitCodeFromError(err))

	_, err = graph.Analyze(`graph G { a -- b [weight=x]; }`, graph.ModeMST)
	assert.Equal(t, errorutil.CodeInvalidData, errorutil.ExitCodeFromError(err))

	_, err = graph.Analyze(`graph G { a -- b; a -- b [weight=x]; }`, graph.ModeRedundant)
	assert.Equal(t, errorutil.CodeInvalidData, errorutil.ExitCodeFromError(err))
}

func TestGraphCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := graph.GraphCmd()
	cmd.SetArgs([]string{"-i", "-", "-m", "mst"})
	cmd.SetIn(strings.NewReader(triangle))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	require.NoError(t, cmd.Execute())
	assert.True(t, gjson.Valid(out.String()))
	assert.Equal(t, "b", gjson.Get(out.String(), "edges.0.src").String())

	cmd = graph.GraphCmd()
	cmd.SetArgs([]string{"-m", "mst"})
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	assert.Equal(t, errorutil.CodeMissingInput, errorutil.ExitCodeFromError(err))

	cmd = graph.GraphCmd()
	cmd.SetArgs([]string{"-i", "-", "-m", "cycles"})
	cmd.SetErr(io.Discard)
	assert.Error(t, cmd.Execute())
}
