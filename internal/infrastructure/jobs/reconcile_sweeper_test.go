package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeReconciler struct {
	sweeps, repairs int
	sweepErr        error
}

func (f *fakeReconciler) SweepStalePayments(context.Context) (int, error) {
	f.sweeps++
	return 2, f.sweepErr
}

func (f *fakeReconciler) RepairFeaturedDrift(context.Context) (int, error) {
	f.repairs++
	return 1, nil
}

func TestReconcileSweeper_RunOnceRunsBothSteps(t *testing.T) {
	r := &fakeReconciler{sweepErr: errors.New("db down")}
	s := NewReconcileSweeper(r, "")

	s.RunOnce(context.Background())

	assert.Equal(t, 1, r.sweeps)
	assert.Equal(t, 1, r.repairs, "drift repair runs even when the sweep fails")
	assert.Equal(t, DefaultSweepSchedule, s.schedule)
}

func TestReconcileSweeper_StartRejectsBadSchedule(t *testing.T) {
	s := NewReconcileSweeper(&fakeReconciler{}, "every now and then")
	assert.Error(t, s.Start())
}

func TestReconcileSweeper_StartStop(t *testing.T) {
	s := NewReconcileSweeper(&fakeReconciler{}, "@every 1h")
	assert.NoError(t, s.Start())
	s.Stop()
}
