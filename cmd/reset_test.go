package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/shadower/internal/controller"
	"github.com/mouse-blink/shadower/internal/domain"
	m "github.com/mouse-blink/shadower/internal/model"
	"github.com/mouse-blink/shadower/internal/shadows"
)

func TestResetCmd_ReportsSuccess(t *testing.T) {
	cmd, buf := newTestRoot(t, newResetCmd())
	ui = controller.NewSimpleUI(cmd)

	shadows.RegisterStats("/data", 10, 5, 1)

	require.NoError(t, run(t, cmd, "reset"))
	assert.Contains(t, buf.String(), "Ran 2 reset hook(s)")
	assert.Contains(t, buf.String(), "All reset hooks succeeded")
}

func TestResetCmd_FailingHookStillRunsOthers(t *testing.T) {
	cmd, buf := newTestRoot(t, newResetCmd())
	ui = controller.NewSimpleUI(cmd)

	boom := errors.New("boom")
	registerShadows = func(reg *domain.Registry) error {
		if err := shadows.RegisterAll(reg); err != nil {
			return err
		}

		return reg.Register(m.Shadow("ShadowBroken", "example.Broken").
			Reset(func() error { return boom }).
			MustBuild())
	}

	err := run(t, cmd, "reset")
	require.ErrorIs(t, err, boom)

	var resetErr *domain.ResetError
	require.ErrorAs(t, err, &resetErr)
	require.Len(t, resetErr.Failures, 1)
	assert.Equal(t, "ShadowBroken", resetErr.Failures[0].Shadow)

	assert.Contains(t, buf.String(), "Ran 3 reset hook(s)")
	assert.Contains(t, buf.String(), "ShadowBroken (example.Broken): boom")
}
