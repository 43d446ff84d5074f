package config

import (
	"os"
	"strings"
	"testing"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			// Setup: set environment variable if provided
			if tt.envValue != "" {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key) // cleanup after test
			} else {
				os.Unsetenv(tt.key) // ensure it's not set
			}

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("INT_KEY", "42")
	t.Setenv("BAD_INT_KEY", "forty-two")
	t.Setenv("BOOL_KEY", "false")

	if got := GetEnvAsType("INT_KEY", 7); got != 42 {
		t.Errorf("GetEnvAsType(INT_KEY) = %d, expected 42", got)
	}
	if got := GetEnvAsType("BAD_INT_KEY", 7); got != 7 {
		t.Errorf("GetEnvAsType(BAD_INT_KEY) = %d, expected fallback 7", got)
	}
	if got := GetEnvAsType("BOOL_KEY", true); got != false {
		t.Errorf("GetEnvAsType(BOOL_KEY) = %t, expected false", got)
	}
	if got := GetEnvAsType("UNSET_FLOAT_KEY", 1.5); got != 1.5 {
		t.Errorf("GetEnvAsType(UNSET_FLOAT_KEY) = %v, expected 1.5", got)
	}
}

func TestLoadConfig(t *testing.T) {
	// Helper function to set multiple env vars
	setTestEnv := func() {
		os.Setenv("APP_PORT", "9000")
		os.Setenv("APP_HOST", "0.0.0.0")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("DB_DRIVER", "postgres")
		os.Setenv("DB_PASSWORD", "super_secret_password")
		os.Setenv("METRICS_ENABLED", "false")
	}

	// Helper function to cleanup env vars
	cleanupTestEnv := func() {
		vars := []string{
			"APP_PORT", "APP_HOST", "LOG_LEVEL", "DB_DRIVER", "DB_PASSWORD", "METRICS_ENABLED",
		}
		for _, v := range vars {
			os.Unsetenv(v)
		}
	}

	t.Run("successful config load with all env vars", func(t *testing.T) {
		setTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}

		if config.Port != 9000 {
			t.Errorf("Port = %d, expected 9000", config.Port)
		}
		if config.Host != "0.0.0.0" {
			t.Errorf("Host = %s, expected 0.0.0.0", config.Host)
		}
		if config.Address() != "0.0.0.0:9000" {
			t.Errorf("Address() = %s, expected 0.0.0.0:9000", config.Address())
		}
		if config.LogLevel != "debug" {
			t.Errorf("LogLevel = %s, expected debug", config.LogLevel)
		}
		if !config.Database.Debug {
			t.Error("Database.Debug should follow debug log level")
		}
		if config.Database.Driver != "postgres" {
			t.Errorf("Database.Driver = %s, expected postgres", config.Database.Driver)
		}
		if config.MetricsEnabled {
			t.Error("MetricsEnabled should be false")
		}
	})

	t.Run("string masks the database password", func(t *testing.T) {
		setTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}

		if s := config.String(); strings.Contains(s, "super_secret_password") {
			t.Errorf("String() leaks password: %s", s)
		}
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("APP_PORT", "not_a_number")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when APP_PORT is invalid")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should fail with out of range port", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("APP_PORT", "70000")
		defer cleanupTestEnv()

		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() should return error when APP_PORT is out of range")
		}
	})

	t.Run("should fail with unsupported driver", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("DB_DRIVER", "oracle")
		defer cleanupTestEnv()

		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() should return error when DB_DRIVER is unsupported")
		}
	})

	t.Run("should fail with unknown log level", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("LOG_LEVEL", "chatty")
		defer cleanupTestEnv()

		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() should return error when LOG_LEVEL is unknown")
		}
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err != nil {
			t.Fatalf("LoadConfig() returned unexpected error: %v", err)
		}

		// Check defaults
		if config.Port != 8080 {
			t.Errorf("Port = %d, expected default 8080", config.Port)
		}
		if config.Host != "127.0.0.1" {
			t.Errorf("Host = %s, expected default 127.0.0.1", config.Host)
		}
		if config.LogLevel != "" {
			t.Errorf("LogLevel = %s, expected empty so APP_ENV decides", config.LogLevel)
		}
		if config.Database.Debug {
			t.Error("Database.Debug should be off without an explicit debug level")
		}
		if config.Database.Driver != "sqlite" || config.Database.Path != "pizzas.sqlite" {
			t.Errorf("Database = %s, expected sqlite at pizzas.sqlite", config.Database.String())
		}
		if !config.MetricsEnabled || !config.SwaggerEnabled {
			t.Error("metrics and swagger should be enabled by default")
		}
	})
}

// Benchmark tests (optional but good practice)
func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
