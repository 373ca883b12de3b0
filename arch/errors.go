package arch

import "github.com/katalvlaran/meshpart/errs"

// archErrorf mirrors the teacher's builderErrorf/denseErrorf convention:
// a sentinel preserved for errors.Is, prefixed with method context.
func archErrorf(method string, err error) error {
	return errs.Wrap(pkgName, method, err)
}
