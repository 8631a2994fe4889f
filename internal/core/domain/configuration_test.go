package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestCompilerConfiguration_ToolName(t *testing.T) {
	tests := []struct {
		config   domain.CompilerConfiguration
		expected string
	}{
		{domain.ConfigurationDebug, "Debug"},
		{domain.ConfigurationRelease, "Release"},
		{domain.ConfigurationMaster, "ReleasePlus"},
	}

	for _, tt := range tests {
		t.Run(tt.config.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.ToolName())
		})
	}
}

func TestParseCompilerConfiguration(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.CompilerConfiguration
	}{
		{"Debug", domain.ConfigurationDebug},
		{"debug", domain.ConfigurationDebug},
		{"RELEASE", domain.ConfigurationRelease},
		{"", domain.ConfigurationRelease},
		{"Master", domain.ConfigurationMaster},
		{"ReleasePlus", domain.ConfigurationMaster},
		{" master ", domain.ConfigurationMaster},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseCompilerConfiguration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseCompilerConfiguration_Invalid(t *testing.T) {
	_, err := domain.ParseCompilerConfiguration("Profile")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid compiler configuration")

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "Profile", zErr.Metadata()["configuration"])
}
