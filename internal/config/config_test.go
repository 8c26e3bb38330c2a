package config

import (
	"os"
	"testing"
	"time"
)

func TestGetenv(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      string
		expected string
	}{
		{
			name:     "variable set",
			key:      "TEST_VAR",
			value:    "test_value",
			def:      "default",
			expected: "test_value",
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_VAR_MISSING",
			value:    "",
			def:      "default",
			expected: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			result := getenv(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("getenv() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      int
		expected int
	}{
		{
			name:     "valid integer",
			key:      "TEST_INT",
			value:    "42",
			def:      1,
			expected: 42,
		},
		{
			name:     "invalid integer uses default",
			key:      "TEST_INT_INVALID",
			value:    "not_a_number",
			def:      7,
			expected: 7,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_INT_MISSING",
			value:    "",
			def:      5,
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			result := getenvInt(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("getenvInt() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{
			name:     "valid duration",
			key:      "TEST_DURATION",
			value:    "5s",
			def:      1 * time.Second,
			expected: 5 * time.Second,
		},
		{
			name:     "invalid duration uses default",
			key:      "TEST_DURATION_INVALID",
			value:    "invalid",
			def:      10 * time.Second,
			expected: 10 * time.Second,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_DURATION_MISSING",
			value:    "",
			def:      15 * time.Second,
			expected: 15 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			result := mustDuration(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      bool
		expected bool
	}{
		{
			name:     "true value",
			key:      "TEST_BOOL",
			value:    "true",
			def:      false,
			expected: true,
		},
		{
			name:     "false value",
			key:      "TEST_BOOL_FALSE",
			value:    "false",
			def:      true,
			expected: false,
		},
		{
			name:     "invalid value uses default",
			key:      "TEST_BOOL_INVALID",
			value:    "invalid",
			def:      true,
			expected: true,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_BOOL_MISSING",
			value:    "",
			def:      false,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			result := mustBool(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustBool() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single value",
			input:    "value1",
			expected: []string{"value1"},
		},
		{
			name:     "multiple values with spaces",
			input:    "value1, value2, value3",
			expected: []string{"value1", "value2", "value3"},
		},
		{
			name:     "quoted values",
			input:    `"value1", 'value2'`,
			expected: []string{"value1", "value2"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "only separators",
			input:    ", ,",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitAndTrim(tt.input)
			if len(result) != len(tt.expected) {
				t.Errorf("splitAndTrim() length = %v, want %v", len(result), len(tt.expected))
				return
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("splitAndTrim()[%d] = %v, want %v", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %v, want :8080", cfg.ListenPort)
	}
	if cfg.AdminUser != "pmlaogao" {
		t.Errorf("AdminUser = %v, want pmlaogao", cfg.AdminUser)
	}
	if cfg.GuestQuota != 5 {
		t.Errorf("GuestQuota = %v, want 5", cfg.GuestQuota)
	}
	if cfg.UnlockCode != "Kill" {
		t.Errorf("UnlockCode = %v, want Kill", cfg.UnlockCode)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %v, want empty", cfg.RedisAddr)
	}
	if cfg.GeoTimeout != 800*time.Millisecond {
		t.Errorf("GeoTimeout = %v, want 800ms", cfg.GeoTimeout)
	}
}

func TestLoadRejectsZeroQuota(t *testing.T) {
	if err := os.Setenv("PORTAL_GUEST_QUOTA", "0"); err != nil {
		t.Fatalf("failed to set env var: %v", err)
	}
	defer func() {
		if err := os.Unsetenv("PORTAL_GUEST_QUOTA"); err != nil {
			t.Errorf("failed to unset env var: %v", err)
		}
	}()

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Load() should have panicked on zero quota")
		}
	}()

	Load()
}
