package main

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeApp_Flags(t *testing.T) {
	app := makeApp()
	assert.Equal(t, "chatlist", app.Name)

	var names []string
	for _, f := range app.Flags {
		names = append(names, f.Names()[0])
	}
	assert.ElementsMatch(t, []string{
		"sidebar-width",
		"markdown",
		"debug",
		"log-file",
		"no-alt-screen",
	}, names)
}

func TestMakeApp_RejectsNarrowSidebar(t *testing.T) {
	app := makeApp()
	app.Writer, app.ErrWriter = io.Discard, io.Discard

	err := app.Run(context.Background(), []string{"chatlist", "--sidebar-width", "5"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sidebar width")
}
