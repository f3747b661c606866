package clicommand

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adf-tools/adfdoc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsConformingFile(t *testing.T) {
	input := writeTestPipeline(t, testPipelineJSON)

	l := logger.NewBuffer()
	err := validate(context.Background(), ValidateConfig{FilePath: input}, l)

	require.NoError(t, err)
	assert.Contains(t, l.Messages, "[notice] Pipeline file \""+input+"\" is valid")
}

func TestValidateReportsViolations(t *testing.T) {
	input := writeTestPipeline(t, `{"properties": {"activities": []}}`)

	l := logger.NewBuffer()
	err := validate(context.Background(), ValidateConfig{FilePath: input}, l)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema violations")
	assert.NotEmpty(t, l.Messages)
}

func TestValidateMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	l := logger.NewBuffer()
	err := validate(context.Background(), ValidateConfig{FilePath: path}, l)

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "want a not-exist error, got %v", err)
}
