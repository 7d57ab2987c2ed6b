package loader_test

import (
	"errors"
	"testing"

	"hotwire-demo/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loads   int
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loads++
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	a := &fakeFeature{name: "a", enabled: true}
	b := &fakeFeature{name: "b", enabled: false}
	c := &fakeFeature{name: "c", enabled: true}

	mgr := loader.NewManager()
	mgr.Register(a)
	mgr.Register(b)
	mgr.Register(c)
	assert.Len(t, mgr.Features(), 3)

	loaded, err := mgr.LoadAll(fiber.New())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, loaded)
	assert.Equal(t, 1, a.loads)
	assert.Equal(t, 0, b.loads)
	assert.Equal(t, 1, c.loads)
}

func TestManager_LoadAll_Error(t *testing.T) {
	boom := errors.New("boom")
	mgr := loader.NewManager()
	mgr.Register(&fakeFeature{name: "ok", enabled: true})
	mgr.Register(&fakeFeature{name: "broken", enabled: true, err: boom})
	mgr.Register(&fakeFeature{name: "never", enabled: true})

	loaded, err := mgr.LoadAll(fiber.New())
	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "failed to load feature broken: boom")
	assert.Equal(t, []string{"ok"}, loaded)
}
