package env

import (
	"github.com/stretchr/testify/assert"
	"os"
	"strings"
	"testing"
)

func TestVal(t *testing.T) {
	const key = "TEST_VAL"

	tests := []struct {
		name     string
		value    string
		expected string
		unset    bool
	}{
		{
			name:     "Unset",
			unset:    true,
			expected: "default",
		},
		{
			name:     "Empty",
			value:    "",
			expected: "default",
		},
		{
			name:     "Trimmed",
			value:    "\n\t abc \t\n",
			expected: "abc",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.unset {
				assert.NoError(t, os.Setenv(key, tc.value))
			}
			assert.Equal(t, tc.expected, Val(key, "default"))
		})
	}
}

func TestVal_CaseInsensitiveKey(t *testing.T) {
	assert.NoError(t, os.Setenv("TEST_VAL_CASED", "abc"))
	assert.Equal(t, "abc", Val("test_val_cased", "default"))
}

func TestBool(t *testing.T) {
	const key = "TEST_BOOL"
	tests := []struct {
		name     string
		unset    bool
		value    string
		expected bool
	}{
		{
			name:     "Unset",
			unset:    true,
			expected: false,
		},
		{
			name:     "Empty",
			value:    "",
			expected: false,
		},
		{
			name:     "Not a bool",
			value:    "blah",
			expected: false,
		},
		{
			name:     "Truthy",
			value:    TrueValues[0],
			expected: true,
		},
		{
			name:     "Truthy Uppercase",
			value:    strings.ToUpper(TrueValues[2]),
			expected: true,
		},
		{
			name:     "Falsy",
			value:    FalseValues[0],
			expected: false,
		},
		{
			name:     "Falsy Uppercase",
			value:    strings.ToUpper(FalseValues[2]),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.unset {
				assert.NoError(t, os.Setenv(key, tc.value))
			}
			assert.Equal(t, tc.expected, Bool(key, false))
		})
	}
}

func TestBool_DefaultOnMiss(t *testing.T) {
	assert.NoError(t, os.Setenv("TEST_BOOL_MISS", "maybe"))
	assert.True(t, Bool("TEST_BOOL_MISS", true))
}

func TestInt(t *testing.T) {
	const (
		key              = "TEST_INT"
		defaultVal int64 = -17
	)
	tests := []struct {
		name     string
		unset    bool
		value    string
		expected int64
	}{
		{
			name:     "Unset",
			unset:    true,
			expected: defaultVal,
		},
		{
			name:     "Empty",
			value:    "",
			expected: defaultVal,
		},
		{
			name:     "Not an int",
			value:    "blah",
			expected: defaultVal,
		},
		{
			name:     "Positive",
			value:    "100",
			expected: 100,
		},
		{
			name:     "Negative",
			value:    "-100",
			expected: -100,
		},
		{
			name:     "Zero",
			value:    "0",
			expected: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.unset {
				assert.NoError(t, os.Setenv(key, tc.value))
			}
			assert.Equal(t, tc.expected, Int(key, defaultVal))
		})
	}
}
