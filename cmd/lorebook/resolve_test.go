package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	assert.True(t, confirm(strings.NewReader("y\n"), "proceed?"))
	assert.True(t, confirm(strings.NewReader("YES\n"), "proceed?"))
	assert.False(t, confirm(strings.NewReader("n\n"), "proceed?"))
	assert.False(t, confirm(strings.NewReader("\n"), "proceed?"))
	// EOF counts as no.
	assert.False(t, confirm(strings.NewReader(""), "proceed?"))
}

func TestResolveRevert_DeclinedConfirmationCancels(t *testing.T) {
	cmd := newResolveRevertCmd()
	cmd.SetIn(strings.NewReader("n\n"))
	cmd.SetArgs([]string{"merge-1"})

	// Declining must return cleanly without touching config or backend;
	// had the command proceeded, dependency loading would have failed.
	require.NoError(t, cmd.Execute())
}

func TestResolveRevert_HasSkipFlag(t *testing.T) {
	cmd := newResolveRevertCmd()
	assert.NotNil(t, cmd.Flags().Lookup("yes"))
}

func TestResolveDismiss_DeclinedConfirmationCancels(t *testing.T) {
	cmd := newResolveDismissCmd()
	cmd.SetIn(strings.NewReader("n\n"))
	cmd.SetArgs([]string{"conflict-1"})

	require.NoError(t, cmd.Execute())
}
