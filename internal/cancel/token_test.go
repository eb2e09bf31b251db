package cancel

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_CancelIsMonotonic(t *testing.T) {
	tok := New()
	assert.False(t, tok.Cancelled())
	tok.Cancel()
	assert.True(t, tok.Cancelled())
	tok.Cancel()
	assert.True(t, tok.Cancelled())
}

func TestToken_PIDDefaultsToZero(t *testing.T) {
	tok := New()
	assert.Equal(t, 0, tok.PID())
	tok.SetPID(1234)
	assert.Equal(t, 1234, tok.PID())
	tok.SetPID(0)
	assert.Equal(t, 0, tok.PID())
}

func TestToken_ConcurrentAccessIsRaceFree(t *testing.T) {
	tok := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(pid int) {
			defer wg.Done()
			tok.SetPID(pid)
		}(i + 1)
		go func() {
			defer wg.Done()
			tok.Cancelled()
		}()
	}
	wg.Wait()
	tok.Cancel()
	assert.True(t, tok.Cancelled())
}
