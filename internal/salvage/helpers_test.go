package salvage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// assetText builds a Unity style asset for a named reward. currencies are
// the raw lines of the m_AwardedCurrencies value, already indented.
func assetText(name string, currencies ...string) string {
	lines := []string{
		"%YAML 1.1",
		"%TAG !u! tag:unity3d.com,2011:",
		"--- !u!114 &11400000",
		"MonoBehaviour:",
		"  m_ObjectHideFlags: 0",
		"  m_Name: " + name,
		"  m_Data:",
	}
	if len(currencies) > 0 {
		lines = append(lines, "    m_AwardedCurrencies:")
		lines = append(lines, currencies...)
	}
	return strings.Join(lines, "\n") + "\n"
}

// currency renders one m_AwardedCurrencies entry.
func currency(lo, hi, mass string) []string {
	return []string{
		"    - m_MinInitialValue: " + lo,
		"      m_MaxInitialValue: " + hi,
		"      m_MassBasedValue: " + mass,
	}
}

func writeAsset(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
