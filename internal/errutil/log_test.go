package errutil_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gamebox/internal/errutil"
)

func TestLogError_WithOopsError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	err := oops.Code("NOTHING_TO_POP").
		With("depth", 1).
		Errorf("pop: only one state remains")

	errutil.LogError(logger, "transition failed", err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "transition failed", entry["msg"])
	assert.Equal(t, "NOTHING_TO_POP", entry["code"])
}

func TestLogError_WithStandardError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	errutil.LogError(logger, "handler failed", errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Contains(t, entry["error"], "boom")
	assert.NotContains(t, entry, "code")
}

func TestCode(t *testing.T) {
	assert.Equal(t, "X", errutil.Code(oops.Code("X").Errorf("x")))
	assert.Nil(t, errutil.Code(errors.New("plain")))
}

func TestAssertErrorContext(t *testing.T) {
	err := oops.Code("NIL_STATE").With("op", "push").Errorf("nil state")

	errutil.AssertErrorCode(t, err, "NIL_STATE")
	errutil.AssertErrorContext(t, err, "op", "push")
}
