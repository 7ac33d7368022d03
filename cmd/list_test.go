package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	adaptermocks "github.com/mouse-blink/shadower/internal/adapter/mocks"
	"github.com/mouse-blink/shadower/internal/controller"
	controllermocks "github.com/mouse-blink/shadower/internal/controller/mocks"
	m "github.com/mouse-blink/shadower/internal/model"
)

func TestListCmd_DisplaysEveryShadow(t *testing.T) {
	cmd, _ := newTestRoot(t, newListCmd())

	mockUI := controllermocks.NewMockUI(t)
	ui = mockUI

	mockUI.EXPECT().Start(mock.Anything).Return(nil)
	mockUI.EXPECT().DisplayShadows(mock.MatchedBy(func(rows []controller.ShadowRow) bool {
		active := 0
		for _, row := range rows {
			if row.Active {
				active++
			}
		}

		return len(rows) == 3 && active == 2
	}), 16).Return(nil)
	mockUI.EXPECT().Wait().Return()

	require.NoError(t, run(t, cmd, "list", "--sdk", "16"))
}

func TestListCmd_DisplayErrorClosesUI(t *testing.T) {
	cmd, _ := newTestRoot(t, newListCmd())

	mockUI := controllermocks.NewMockUI(t)
	ui = mockUI

	boom := errors.New("boom")
	mockUI.EXPECT().Start(mock.Anything).Return(nil)
	mockUI.EXPECT().DisplayShadows(mock.Anything, 25).Return(boom)
	mockUI.EXPECT().Close().Return()

	require.ErrorIs(t, run(t, cmd, "list"), boom)
}

func TestListCmd_SaveWritesManifest(t *testing.T) {
	cmd, buf := newTestRoot(t, newListCmd())

	mockUI := controllermocks.NewMockUI(t)
	mockStore := adaptermocks.NewMockManifestStore(t)
	ui, manifestStore = mockUI, mockStore

	dir := t.TempDir()
	mockStore.EXPECT().Save(m.Path(dir), mock.MatchedBy(func(manifest m.Manifest) bool {
		return len(manifest.Shadows) == 3
	})).Return(m.Path(filepath.Join(dir, "0123456789abcdef.yaml")), nil)
	mockUI.EXPECT().Start(mock.Anything).Return(nil)
	mockUI.EXPECT().DisplayShadows(mock.Anything, 25).Return(nil)
	mockUI.EXPECT().Wait().Return()

	require.NoError(t, run(t, cmd, "list", "--save", "--dir", dir))
	assert.Contains(t, buf.String(), "Saved manifest "+filepath.Join(dir, "0123456789abcdef.yaml"))
}

func TestListCmd_SaveFailure(t *testing.T) {
	cmd, _ := newTestRoot(t, newListCmd())

	mockStore := adaptermocks.NewMockManifestStore(t)
	ui, manifestStore = controllermocks.NewMockUI(t), mockStore

	boom := errors.New("disk full")
	mockStore.EXPECT().Save(mock.Anything, mock.Anything).Return(m.Path(""), boom)

	require.ErrorIs(t, run(t, cmd, "list", "--save"), boom)
}

func TestListCmd_YAMLOutput(t *testing.T) {
	cmd, buf := newTestRoot(t, newListCmd())
	ui = controllermocks.NewMockUI(t)

	require.NoError(t, run(t, cmd, "list", "-o", "yaml"))

	var manifest m.Manifest
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &manifest))

	names := make([]string, 0, len(manifest.Shadows))
	for _, entry := range manifest.Shadows {
		names = append(names, entry.Name)
	}

	assert.ElementsMatch(t, []string{"ShadowStatFs", "ShadowUserManager", "ShadowPrivate"}, names)
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list", cmd.Use)
	assert.Equal(t, listLongDescription, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("save"))
	assert.NotNil(t, cmd.Flags().Lookup("dir"))
}
