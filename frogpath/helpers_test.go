package frogpath_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexhop/pond"
)

// mustPond parses rows in the pond text format or fails the test.
func mustPond(t testing.TB, rows ...string) *pond.Pond {
	t.Helper()
	p, err := pond.Parse(strings.NewReader(strings.Join(rows, "\n")))
	require.NoError(t, err)

	return p
}

// cellAt returns the cell with the given ID or fails the test.
func cellAt(t testing.TB, p *pond.Pond, id string) *pond.Cell {
	t.Helper()
	c, ok := p.CellByID(id)
	require.True(t, ok, "no cell %s", id)

	return c
}
