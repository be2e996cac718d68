package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/peek/internal/activity"
	"github.com/llehouerou/peek/internal/mediactl"
	"github.com/llehouerou/peek/internal/suppress"
)

type shown struct {
	kind  activity.Kind
	value float64
	icon  string
}

type mockShower struct {
	calls []shown
}

func (m *mockShower) ShowSneakPeek(kind activity.Kind, value float64, icon string, _ ...activity.ShowOption) {
	m.calls = append(m.calls, shown{kind, value, icon})
}

func TestSlider_DragWritesAndShows(t *testing.T) {
	reg := suppress.New()
	rec := &mediactl.Recorder{}
	sh := &mockShower{}
	s := NewSlider(TargetVolume, 0.5, rec, sh, reg)

	s.Begin()
	assert.True(t, s.Dragging())
	assert.True(t, reg.Active(suppress.AutoClose))
	assert.True(t, reg.Active(suppress.ScrollGesture))

	s.Change(0.6)
	s.Change(1.4)
	s.End()

	assert.Equal(t, []float64{0.6, 1}, rec.Volumes())
	assert.Empty(t, rec.Brightnesses())
	require.Len(t, sh.calls, 2)
	assert.Equal(t, activity.KindVolume, sh.calls[0].kind)
	assert.InDelta(t, 1.0, sh.calls[1].value, 1e-9)
	assert.InDelta(t, 1.0, s.Value(), 1e-9)

	assert.False(t, s.Dragging())
	assert.False(t, reg.Active(suppress.AutoClose))
	assert.False(t, reg.Active(suppress.ScrollGesture))
}

func TestSlider_ChangeWithoutDragIgnored(t *testing.T) {
	rec := &mediactl.Recorder{}
	sh := &mockShower{}
	s := NewSlider(TargetBrightness, 0.3, rec, sh, suppress.New())

	s.Change(0.9)

	assert.Empty(t, rec.Brightnesses())
	assert.Empty(t, sh.calls)
	assert.InDelta(t, 0.3, s.Value(), 1e-9)
}

func TestSlider_StepBrightness(t *testing.T) {
	rec := &mediactl.Recorder{}
	sh := &mockShower{}
	s := NewSlider(TargetBrightness, 0.95, rec, sh, suppress.New())

	s.Step(0.1)
	s.Step(-0.5)

	assert.Equal(t, []float64{1, 0.5}, rec.Brightnesses())
	require.Len(t, sh.calls, 2)
	assert.Equal(t, activity.KindBrightness, sh.calls[1].kind)
	assert.Equal(t, "sun.max", sh.calls[1].icon)
}

func TestSlider_CloseReleasesTokens(t *testing.T) {
	reg := suppress.New()
	other := reg.NewHold(suppress.AutoClose, "panel")
	other.Set(true)

	s := NewSlider(TargetVolume, 0, &mediactl.Recorder{}, &mockShower{}, reg)
	s.Begin()
	require.Equal(t, 2, reg.Len(suppress.AutoClose))

	s.Close()

	assert.Equal(t, 1, reg.Len(suppress.AutoClose))
	assert.True(t, reg.Active(suppress.AutoClose))
	assert.False(t, reg.Active(suppress.ScrollGesture))

	// Closed sliders stay inert.
	s.Begin()
	s.Step(0.2)
	assert.False(t, reg.Active(suppress.ScrollGesture))
	assert.InDelta(t, 0.0, s.Value(), 1e-9)
}

func TestIcon(t *testing.T) {
	tests := []struct {
		target Target
		level  float64
		want   string
	}{
		{TargetVolume, 0, "speaker.slash"},
		{TargetVolume, 0.2, "speaker.wave.1"},
		{TargetVolume, 0.5, "speaker.wave.2"},
		{TargetVolume, 0.9, "speaker.wave.3"},
		{TargetBrightness, 0.1, "sun.min"},
		{TargetBrightness, 0.8, "sun.max"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Icon(tt.target, tt.level))
		})
	}
}
