package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_PlainOutputWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Section("Updating ports on the base system")
	c.SectionFor("Upgrading", "jail1")
	c.Pending("Django 1.3 (1.4)")
	c.Done("Nothing to upgrade.")
	c.Info("Updating the cache file...")
	c.Printf("%s %s\n", c.Tag("[Python]"), c.Target("alpha"))

	assert.Equal(t, "==> Updating ports on the base system:\n"+
		"==> Upgrading jail1:\n"+
		"-> Django 1.3 (1.4)\n"+
		"-> Nothing to upgrade.\n"+
		"-> Updating the cache file...\n"+
		"[Python] alpha\n", buf.String())
}
