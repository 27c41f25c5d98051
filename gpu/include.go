// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/quaddemo/quaddemo/base/errors"
)

// IncludeFS processes #include "file" statements in
// the given code string, using the given file system
// and default path to locate the included files.
// Included files are not themselves expanded.
// The include line is kept as a comment. Missing or
// malformed includes are reported together in the error,
// and their lines are left in place.
func IncludeFS(fsys fs.FS, dir, code string) (string, error) {
	fl := splitLines(code)
	var errs []error
	for li := len(fl) - 1; li >= 0; li-- {
		ln := fl[li]
		if !strings.HasPrefix(ln, `#include "`) {
			continue
		}
		fn := ln[10:]
		qi := strings.Index(fn, `"`)
		if qi < 0 {
			errs = append(errs, fmt.Errorf("line %d: malformed #include: no final quote", li+1))
			continue
		}
		fname := fn[:qi]
		b, err := fs.ReadFile(fsys, path.Join(dir, fname))
		if err != nil {
			b, err = fs.ReadFile(fsys, fname)
			if err != nil {
				errs = append(errs, fmt.Errorf("line %d: could not find include %q in %q", li+1, fname, dir))
				continue
			}
		}
		fl[li] = "// " + ln
		fl = slices.Insert(fl, li+1, splitLines(string(b))...)
	}
	return strings.Join(fl, "\n"), errors.Join(errs...)
}

// splitLines splits s into lines, accepting \n and \r\n endings.
func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
