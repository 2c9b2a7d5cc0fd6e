//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLotteryShowsWinner(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	page, err := tf.WriteMeetingPage("Only Candidate")
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("-source", page, "-thinking", "0"))
	require.True(t, tf.Ready())
	require.True(t, tf.OutputContainsPlain("1/1 eligible", 5*time.Second))

	require.NoError(t, tf.Draw())
	require.True(t, tf.SeePlain("The winner is"), "winner should be announced")
	require.True(t, tf.SeePlain("draw #1"))

	require.NoError(t, tf.SendKeys(KeyRedraw))
	require.True(t, tf.SeePlain("draw #2"))

	require.NoError(t, tf.SendKeys(KeyEsc))
	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitForExit(2*time.Second))
}

func TestLotteryThinkingPhase(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	page, err := tf.WriteMeetingPage("Alice", "Bob")
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("-source", page, "-thinking", "1"))
	require.True(t, tf.Ready())
	require.True(t, tf.OutputContainsPlain("2/2 eligible", 5*time.Second))

	require.NoError(t, tf.Draw())
	require.True(t, tf.SeePlain("Thinking..."))
	require.True(t, tf.OutputContainsPlain("The winner is", 3*time.Second))
}

func TestLotteryWithEveryoneExcluded(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	page, err := tf.WriteMeetingPage("Alice")
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("-source", page, "-thinking", "0"))
	require.True(t, tf.Ready())
	require.True(t, tf.OutputContainsPlain("1/1 eligible", 5*time.Second))

	require.NoError(t, tf.Toggle())
	require.NoError(t, tf.Draw())
	require.True(t, tf.SeePlain("No eligible members to draw from"))
}
