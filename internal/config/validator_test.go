package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidateBytes(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name      string
		doc       string
		wantErr   bool
		wantField string
	}{
		{
			name: "valid full config",
			doc: `
layout:
  componentsDir: components
  containersDir: containers
  testsDir: __tests__
  sharedName: Render
  importPrefix: ../../
casing:
  legacy: false
generate:
  functional: true
log:
  timestamps: true
`,
		},
		{name: "empty document", doc: ""},
		{name: "partial config", doc: "casing:\n  uppercase: true\n"},
		{name: "casing policy", doc: "casing:\n  policy:\n    container: never\n    test-web: always\n"},
		{name: "unknown casing rule", doc: "casing:\n  policy:\n    container: sometimes\n", wantErr: true},
		{name: "unknown casing kind", doc: "casing:\n  policy:\n    widget: never\n", wantErr: true},
		{
			name:      "nested directory rejected",
			doc:       "layout:\n  testsDir: tests/unit\n",
			wantErr:   true,
			wantField: "layout.testsDir",
		},
		{
			name:      "shared name must be an identifier",
			doc:       "layout:\n  sharedName: my-render\n",
			wantErr:   true,
			wantField: "layout.sharedName",
		},
		{
			name:    "unknown field rejected",
			doc:     "layout:\n  pagesDir: pages\n",
			wantErr: true,
		},
		{
			name:      "wrong type rejected",
			doc:       "casing:\n  legacy: sometimes\n",
			wantErr:   true,
			wantField: "casing.legacy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.doc))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			if tt.wantField == "" {
				return
			}
			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %T", err)
			fields := make([]string, 0, len(verrs))
			for _, e := range verrs {
				fields = append(fields, e.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestValidator_ValidateDefaultConfig(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)
	assert.NoError(t, v.Validate(DefaultConfig()))
	assert.NoError(t, v.Validate(&Config{}))
}

func TestValidator_ValidateFile(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, ".crc.yaml")
	require.NoError(t, WriteDefault(path, false))
	assert.NoError(t, v.ValidateFile(path))

	assert.Error(t, v.ValidateFile(filepath.Join(dir, "missing.yaml")))
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{{Field: "layout.testsDir", Message: "invalid value"}}
	assert.Contains(t, errs.Error(), "layout.testsDir: invalid value")
	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".crc.yaml")

	require.NoError(t, WriteDefault(path, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# crc project configuration.")
	assert.Contains(t, string(data), "componentsDir: components")

	err = WriteDefault(path, false)
	assert.ErrorIs(t, err, os.ErrExist)

	assert.NoError(t, WriteDefault(path, true))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Layout, cfg.Layout)
}
