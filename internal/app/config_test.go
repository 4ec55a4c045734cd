package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		in      Config
		wantOut string
		wantErr string
	}{
		{name: "defaults output to text", in: Config{ConfigPaths: []string{"main.hcl"}}, wantOut: "text"},
		{name: "keeps yaml", in: Config{ConfigPaths: []string{"."}, OutputFormat: "yaml"}, wantOut: "yaml"},
		{name: "requires a path", in: Config{}, wantErr: "configuration path"},
		{name: "negative depth", in: Config{ConfigPaths: []string{"."}, MaxDepth: -1}, wantErr: "cannot be negative"},
		{name: "depth at limit", in: Config{ConfigPaths: []string{"."}, MaxDepth: 100000}, wantOut: "text"},
		{name: "depth above limit", in: Config{ConfigPaths: []string{"."}, MaxDepth: 100001}, wantErr: "cannot exceed 100000"},
		{name: "unknown output", in: Config{ConfigPaths: []string{"."}, OutputFormat: "xml"}, wantErr: "invalid output format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := NewConfig(tc.in)

			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOut, cfg.OutputFormat)
		})
	}
}
