package cmd

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/shadower/internal/controller"
	controllermocks "github.com/mouse-blink/shadower/internal/controller/mocks"
	"github.com/mouse-blink/shadower/internal/platform"
)

func TestResolveCmd_Miss(t *testing.T) {
	cmd, _ := newTestRoot(t, newResolveCmd())

	mockUI := controllermocks.NewMockUI(t)
	ui = mockUI
	mockUI.EXPECT().DisplayResolution(controller.Resolution{Type: "example.Unknown", Version: 25}).Return(nil)

	require.NoError(t, run(t, cmd, "resolve", "example.Unknown"))
}

func TestResolveCmd_ClassRangeMiss(t *testing.T) {
	cmd, _ := newTestRoot(t, newResolveCmd())

	mockUI := controllermocks.NewMockUI(t)
	ui = mockUI
	mockUI.EXPECT().DisplayResolution(controller.Resolution{Type: platform.UserManagerType, Version: 16}).Return(nil)

	require.NoError(t, run(t, cmd, "resolve", string(platform.UserManagerType), "--sdk", "16"))
}

func TestResolveCmd_MethodGating(t *testing.T) {
	tests := []struct {
		sdk      string
		wantLong bool
	}{
		{"17", false},
		{"18", true},
	}

	for _, tt := range tests {
		t.Run("sdk "+tt.sdk, func(t *testing.T) {
			cmd, _ := newTestRoot(t, newResolveCmd())

			mockUI := controllermocks.NewMockUI(t)
			ui = mockUI

			var got controller.Resolution
			mockUI.EXPECT().DisplayResolution(mock.Anything).
				Run(func(res controller.Resolution) { got = res }).
				Return(nil)

			require.NoError(t, run(t, cmd, "resolve", string(platform.StatFsType), "--sdk", tt.sdk))

			assert.Equal(t, "ShadowStatFs", got.Shadow)
			assert.Equal(t, "[0,∞)", got.Range)
			assert.Contains(t, got.Methods, platform.SigGetBlockCount.Key())
			assert.NotContains(t, got.Methods, platform.SigGetFreeBlocksLong.Key())
			assert.Equal(t, tt.wantLong, slices.Contains(got.Methods, platform.SigGetBlockCountLong.Key()))
		})
	}
}
