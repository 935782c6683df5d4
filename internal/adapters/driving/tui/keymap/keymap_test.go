package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"q", "ctrl+c"}},
		{"help", km.Help, []string{"?"}},
		{"next view", km.NextView, []string{"tab"}},
		{"previous view", km.PrevView, []string{"shift+tab"}},
		{"jump view", km.JumpView, []string{"1", "4", "7"}},
		{"up", km.Up, []string{"up", "k"}},
		{"down", km.Down, []string{"down", "j"}},
		{"select", km.Select, []string{"enter"}},
		{"back", km.Back, []string{"esc"}},
		{"toggle", km.Toggle, []string{" "}},
		{"delete", km.Delete, []string{"d"}},
		{"new", km.New, []string{"n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range tt.keys {
				assert.Contains(t, tt.binding.Keys(), k)
			}
		})
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ShortHelp()
	assert.Len(t, help, 4)
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.FullHelp()
	require.Len(t, help, 4)
	assert.Len(t, help[1], 4)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.False(t, Matches("x", km.Quit))
	assert.True(t, Matches("3", km.JumpView))
	assert.False(t, Matches("8", km.JumpView))
}

func TestDescribe(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, []string{"tab next panel", "q quit"}, Describe(km.NextView, km.Quit))
	assert.Empty(t, Describe())
}
