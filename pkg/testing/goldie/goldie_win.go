//go:build windows

package goldie

import (
	"bytes"
	"testing"
)

// golden fixtures are committed with \n line endings, normalize before comparing
func Assert(t *testing.T, name string, actual []byte) {
	t.Helper()

	New(t).Assert(t, name, bytes.ReplaceAll(actual, []byte("\r\n"), []byte("\n")))
}

func Update(t *testing.T, name string, actual []byte) {
	t.Helper()

	_ = New(t).Update(t, name, actual)
}
