// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/cockroachdb/errors"
)

// ErrTooFewVertices is returned when a graph size is below MinGraphNodes.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrBadSize is returned for negative array or tree lengths.
var ErrBadSize = errors.New("builder: invalid size")

// builderErrorf prefixes a sentinel with the generator that rejected it.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, "%s: "+format, append([]interface{}{method}, args...)...)
}
