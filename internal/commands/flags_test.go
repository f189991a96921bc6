package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPaths_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")

	assert.Equal(t, filepath.Join("/tmp/cfg", "beacon", "config.yaml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/tmp/data", "beacon"), DefaultDataDir())
}

func TestDefaultPaths_Home(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/home/student")

	assert.Equal(t, filepath.Join("/home/student", ".config", "beacon", "config.yaml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/home/student", ".local", "share", "beacon"), DefaultDataDir())
}
