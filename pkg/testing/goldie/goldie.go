// Package goldie wraps the golden file assertion helper with this repository's
// fixture conventions.
package goldie

import (
	"testing"

	gold "github.com/sebdah/goldie/v2"
)

func New(t *testing.T) *gold.Goldie {
	t.Helper()

	return gold.New(t,
		gold.WithFixtureDir("fixtures"),
		gold.WithNameSuffix(".golden"),
	)
}
