package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salvager.dev/pkg/salvager/internal/domain"
)

func TestGrindNameCmd_PassesArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.GrindArgs
	}{
		{
			name: "by name",
			args: []string{"grind", "name", "Miner", "-w", "w.yaml", "-p", "alice"},
			want: domain.GrindArgs{World: "w.yaml", Player: "alice", Target: "Miner"},
		},
		{
			name: "positional force",
			args: []string{"grind", "name", "Miner", "true", "-w", "w.yaml", "-p", "alice"},
			want: domain.GrindArgs{World: "w.yaml", Player: "alice", Target: "Miner", Force: true},
		},
		{
			name: "force flag and diff",
			args: []string{"grind", "name", "Miner", "--force", "--diff", "-w", "w.yaml"},
			want: domain.GrindArgs{World: "w.yaml", Target: "Miner", Force: true, Diff: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			wf := withMockWorkflow(t)
			wf.EXPECT().Grind(mock.Anything, tt.want).Return(nil).Once()

			root, _ := newTestRoot(newGrindCmd())
			root.SetArgs(tt.args)

			// Act
			err := root.Execute()

			// Assert
			require.NoError(t, err)
		})
	}
}

func TestGrindThisCmd_UsesSelection(t *testing.T) {
	// Arrange
	wf := withMockWorkflow(t)
	wf.EXPECT().Grind(mock.Anything, domain.GrindArgs{World: "w.yaml", Player: "bob", Force: true}).Return(nil).Once()

	root, _ := newTestRoot(newGrindCmd())
	root.SetArgs([]string{"grind", "this", "true", "-w", "w.yaml", "-p", "bob"})

	// Act
	err := root.Execute()

	// Assert
	require.NoError(t, err)
}

func TestGrindNameCmd_InvalidForce(t *testing.T) {
	withMockWorkflow(t)

	root, _ := newTestRoot(newGrindCmd())
	root.SetArgs([]string{"grind", "name", "Miner", "maybe", "-w", "w.yaml"})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid force argument")
}

func TestGrindNameCmd_RequiresName(t *testing.T) {
	withMockWorkflow(t)

	root, _ := newTestRoot(newGrindCmd())
	root.SetArgs([]string{"grind", "name"})

	require.Error(t, root.Execute())
}

func TestGrindCmd_PropagatesWorkflowError(t *testing.T) {
	wf := withMockWorkflow(t)
	grindErr := errors.New("world missing")
	wf.EXPECT().Grind(mock.Anything, mock.Anything).Return(grindErr).Once()

	root, _ := newTestRoot(newGrindCmd())
	root.SetArgs([]string{"grind", "name", "Miner", "-w", "w.yaml"})

	err := root.Execute()

	assert.ErrorIs(t, err, grindErr)
}

func TestParseForce(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    bool
		wantErr bool
	}{
		{"absent", nil, false, false},
		{"true", []string{"true"}, true, false},
		{"false", []string{"false"}, false, false},
		{"numeric", []string{"1"}, true, false},
		{"garbage", []string{"yes please"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseForce(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGrindCommandsCmd_ListsSubcommands(t *testing.T) {
	root, out := newTestRoot(newGrindCmd())
	root.SetArgs([]string{"grind", "commands"})

	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "grind name <grid> [force]")
	assert.Contains(t, out.String(), "grind this [force]")
	assert.Contains(t, out.String(), "grind configs [key [value]]")
}

func TestGrindConfigsCmd_ShowsKey(t *testing.T) {
	root, out := newTestRoot(newGrindCmd())
	root.SetArgs([]string{"grind", "configs", maxDistanceConfigKey})

	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), maxDistanceConfigKey)
	assert.Contains(t, out.String(), "1000")
}

func TestGrindConfigsCmd_ListsAll(t *testing.T) {
	root, out := newTestRoot(newGrindCmd())
	root.SetArgs([]string{"grind", "configs"})

	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), enabledConfigKey)
	assert.Contains(t, out.String(), maxSlotsConfigKey)
}

func TestGrindConfigsCmd_UnknownKey(t *testing.T) {
	root, _ := newTestRoot(newGrindCmd())
	root.SetArgs([]string{"grind", "configs", "no.such.key"})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestGrindConfigsCmd_SetsAndWritesValue(t *testing.T) {
	tempDir := chdirTemp(t)

	original := viper.GetInt(maxItemCountConfigKey)
	t.Cleanup(func() { viper.Set(maxItemCountConfigKey, original) })

	root, out := newTestRoot(newGrindCmd())
	root.SetArgs([]string{"grind", "configs", maxItemCountConfigKey, "5"})

	require.NoError(t, root.Execute())

	assert.Equal(t, 5, viper.GetInt(maxItemCountConfigKey))
	assert.Contains(t, out.String(), "5")

	contents, err := os.ReadFile(filepath.Join(tempDir, configFileName))
	require.NoError(t, err)
	assert.Contains(t, string(contents), "max_item_count: 5")
}

func TestGrindConfigsCmd_RejectsBadValue(t *testing.T) {
	root, _ := newTestRoot(newGrindCmd())
	root.SetArgs([]string{"grind", "configs", enabledConfigKey, "perhaps"})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value")
}
