package consoles

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsolePrefixes(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	console := newFixedConsole(&out, false)

	console.PushPrefix("git: ")
	console.Printf("%v commits\n", 3)
	console.PopPrefix()
	console.Printf("done\n")

	assert.Equal(t, "[10:11:12] git: 3 commits\n[10:11:12] done\n", out.String())
}

func TestConsoleDebugOnlyWhenVerbose(t *testing.T) {
	t.Parallel()

	var quiet bytes.Buffer
	newFixedConsole(&quiet, false).Debugf("hidden\n")
	assert.Empty(t, quiet.String())

	var verbose bytes.Buffer
	newFixedConsole(&verbose, true).Debugf("shown\n")
	assert.Equal(t, "[10:11:12] shown\n", verbose.String())
}

func TestConsolePopWithoutPrefix(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	console := newFixedConsole(&out, false)

	console.PopPrefix()
	console.Printf("ok\n")

	assert.Equal(t, "[10:11:12] ok\n", out.String())
}

func newFixedConsole(out *bytes.Buffer, verbose bool) Console {
	c := NewConsole(out, verbose).(*writerConsole)
	c.now = func() time.Time { return time.Date(2024, 1, 1, 10, 11, 12, 0, time.UTC) }
	return c
}
