package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		owned []string
		want  []string
	}{
		{
			name:  "short flag with separate value",
			args:  []string{"-c", "conf.json", "-a", "http://api"},
			owned: []string{"-c", "-config"},
			want:  []string{"-c", "conf.json"},
		},
		{
			name:  "flag with equals",
			args:  []string{"-config=alt.json", "-a", "http://api"},
			owned: []string{"-c", "-config"},
			want:  []string{"-config=alt.json"},
		},
		{
			name:  "unknown flags ignored",
			args:  []string{"-x", "1", "--y=2", "positional"},
			owned: []string{"-c"},
			want:  []string{},
		},
		{
			name:  "flag without value at end",
			args:  []string{"-c"},
			owned: []string{"-c"},
			want:  []string{"-c"},
		},
		{
			name:  "next dash token is not a value",
			args:  []string{"-c", "-l", "debug"},
			owned: []string{"-c"},
			want:  []string{"-c"},
		},
		{
			name:  "equals value that looks like a flag",
			args:  []string{"-config=--weird.json"},
			owned: []string{"-config"},
			want:  []string{"-config=--weird.json"},
		},
		{
			name:  "several owned flags keep order",
			args:  []string{"-a", "http://api:8000", "-l", "debug", "-t", "5"},
			owned: []string{"-a", "-t"},
			want:  []string{"-a", "http://api:8000", "-t", "5"},
		},
		{
			name:  "repeated flag preserved",
			args:  []string{"-c", "one.json", "-c", "two.json"},
			owned: []string{"-c"},
			want:  []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:  "empty args",
			args:  []string{},
			owned: []string{"-c"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.owned))
		})
	}
}

func TestConfigFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short flag", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "")
		os.Args = []string{"visionai", "-c", "/etc/short.json"}
		assert.Equal(t, "/etc/short.json", ConfigFile())
	})

	t.Run("long flag wins over env", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "/env.json")
		os.Args = []string{"visionai", "-config", "/etc/long.json"}
		assert.Equal(t, "/etc/long.json", ConfigFile())
	})

	t.Run("env fallback", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "/env.json")
		os.Args = []string{"visionai", "-a", "http://api"}
		assert.Equal(t, "/env.json", ConfigFile())
	})

	t.Run("nothing set", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "")
		os.Args = []string{"visionai"}
		assert.Empty(t, ConfigFile())
	})
}
