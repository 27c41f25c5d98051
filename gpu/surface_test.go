// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/quaddemo/quaddemo/base/errors"
	"github.com/quaddemo/quaddemo/base/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbandonFrame(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(logx.NewHandler(&buf, termenv.WithProfile(termenv.Ascii))))
	t.Cleanup(func() { slog.SetDefault(prev) })

	sf := &Surface{}
	cause := errors.New("encoder unavailable")
	err := sf.abandonFrame("creating command encoder", cause)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrFrameSkipped)
	assert.Equal(t, "gpu: creating command encoder: encoder unavailable", err.Error())
	assert.Empty(t, buf.String(), "draw errors are left to the caller to log")
}
