// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLog(t *testing.T) {
	buf := captureLog(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	err := New("boom")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), "errors_test.go")
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("fail")) })
	assert.Equal(t, 3, Must1(strconv.Atoi("3")))
	assert.Panics(t, func() { Must1(strconv.Atoi("z")) })
}

func TestWrapping(t *testing.T) {
	base := New("base")
	joined := Join(base, nil)
	assert.True(t, Is(joined, base))
	var target *strconv.NumError
	_, err := strconv.Atoi("q")
	assert.True(t, As(err, &target))
	assert.Equal(t, strconv.ErrSyntax, Unwrap(err))
}
