package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertProgramRan checks the log output within a HarnessResult to confirm
// that a program was started.
func AssertProgramRan(t *testing.T, result *HarnessResult, program string) {
	t.Helper()

	expectedLogSubstring := fmt.Sprintf("program=%s", program)

	require.True(t,
		strings.Contains(result.LogOutput, expectedLogSubstring),
		"expected log output for program '%s' was not found in logs", program,
	)
}

// AssertProgramStatus checks the text report for a program's status line.
func AssertProgramStatus(t *testing.T, result *HarnessResult, program, status string) {
	t.Helper()

	line := fmt.Sprintf("== %s: %s\n", program, status)
	require.Contains(t, result.Output, line, "report does not show program '%s' as %s", program, status)
}
