//go:build !windows

package goldie

import (
	"testing"

	goldiev2 "github.com/sebdah/goldie/v2"
)

func Assert(t *testing.T, name string, actual []byte) {
	t.Helper()

	goldiev2.New(t).Assert(t, name, actual)
}

func Update(t *testing.T, name string, actual []byte) {
	t.Helper()

	_ = goldiev2.New(t).Update(t, name, actual)
}
