package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/gdot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestItem is a simple type for testing
type TestItem struct {
	ID   int
	Name string
}

func TestRegister(t *testing.T) {
	reg := New[TestItem]()
	assert.Empty(t, reg.List())

	t.Run("register valid item", func(t *testing.T) {
		require.NoError(t, reg.Register("item1", TestItem{ID: 1, Name: "test"}))
		assert.Equal(t, []string{"item1"}, reg.List())
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", TestItem{ID: 2})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("item1", TestItem{ID: 3})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	})
}

func TestGet(t *testing.T) {
	reg := New[*TestItem]()
	item := &TestItem{ID: 1, Name: "test"}
	MustRegister(reg, "item1", item)

	got, err := reg.Get("item1")
	require.NoError(t, err)
	assert.Same(t, item, got)

	missing, err := reg.Get("nope")
	assert.Nil(t, missing)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestList(t *testing.T) {
	reg := New[int]()
	for i, name := range []string{"tmux_status", "clean_path", "ps1"} {
		MustRegister(reg, name, i)
	}

	assert.Equal(t, []string{"clean_path", "ps1", "tmux_status"}, reg.List())
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "ps1", 1)

	assert.Panics(t, func() { MustRegister(reg, "ps1", 2) })
}

func TestConcurrentAccess(t *testing.T) {
	reg := New[int]()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("item%d", i)
			assert.NoError(t, reg.Register(name, i))
			_, _ = reg.Get(name)
			_ = reg.List()
		}(i)
	}
	wg.Wait()

	assert.Len(t, reg.List(), 20)
}
