package miragic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestRemovalOptions(t *testing.T) {
	t.Parallel()

	var nilOpts *RemovalOptions
	assert.NoError(t, nilOpts.validate())
	assert.Nil(t, nilOpts.params())

	assert.Error(t, (&RemovalOptions{Threshold: intPtr(-1)}).validate())
	assert.Error(t, (&RemovalOptions{Threshold: intPtr(256)}).validate())
	assert.NoError(t, (&RemovalOptions{Threshold: intPtr(0)}).validate())
	assert.NoError(t, (&RemovalOptions{Threshold: intPtr(255)}).validate())

	p := (&RemovalOptions{
		Threshold:      intPtr(128),
		EdgeRefinement: true,
		HairDetection:  true,
		Extra:          map[string]any{"model": "v2"},
	}).params()
	assert.Equal(t, 128, p["threshold"])
	assert.Equal(t, true, p["edge_refinement"])
	assert.Equal(t, true, p["hair_detection"])
	assert.Equal(t, "v2", p["model"])

	// Пустые опции не раздувают запрос
	assert.Nil(t, (&RemovalOptions{}).params())
}

func TestBlurOptions(t *testing.T) {
	t.Parallel()

	assert.Error(t, (&BlurOptions{MaxRadius: intPtr(0)}).validate())
	assert.Error(t, (&BlurOptions{MaxRadius: intPtr(-3)}).validate())
	assert.NoError(t, (&BlurOptions{MaxRadius: intPtr(10)}).validate())

	p := (&BlurOptions{CenterFocus: true, MaxRadius: intPtr(10)}).params()
	assert.Equal(t, true, p["center_focus"])
	assert.Equal(t, 10, p["max_radius"])
}

func TestUpscaleOptions(t *testing.T) {
	t.Parallel()

	for _, m := range []string{"", UpscaleLanczos, UpscaleBicubic, UpscaleNearest} {
		assert.NoError(t, (&UpscaleOptions{Method: m}).validate())
	}
	assert.Error(t, (&UpscaleOptions{Method: "gaussian"}).validate())

	p := (&UpscaleOptions{Method: UpscaleLanczos, Sharpen: true, NoiseReduction: true}).params()
	assert.Equal(t, UpscaleLanczos, p["method"])
	assert.Equal(t, true, p["sharpen"])
	assert.Equal(t, true, p["noise_reduction"])
}

func TestExtraDoesNotOverrideTypedFields(t *testing.T) {
	t.Parallel()

	p := (&RemovalOptions{
		Threshold: intPtr(100),
		Extra:     map[string]any{"threshold": 999},
	}).params()
	require.NotNil(t, p)
	assert.Equal(t, 100, p["threshold"])
}
