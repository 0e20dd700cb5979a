package component

import (
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stub struct{ name string }

func (s stub) Name() string      { return s.name }
func (s stub) Routes(chi.Router) {}

func TestRegister_SortedAndReplaced(t *testing.T) {
	mu.Lock()
	saved := registry
	registry = map[string]Component{}
	mu.Unlock()
	t.Cleanup(func() { mu.Lock(); registry = saved; mu.Unlock() })

	Register(stub{"zeta"})
	Register(stub{"alpha"})
	Register(stub{"alpha"})

	all := All()
	if assert.Len(t, all, 2) {
		assert.Equal(t, "alpha", all[0].Name())
		assert.Equal(t, "zeta", all[1].Name())
	}
}
