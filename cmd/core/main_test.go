package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServeErrorIsNotPrinted(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"serve", "--config", filepath.Join(t.TempDir(), "missing.yaml")})

	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "failed to read config file")
	assert.Empty(t, out.String(), "usage should not be printed")
	assert.Empty(t, errOut.String(), "error is logged once by main")
}
