package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdedit/pkg/editor"
)

func TestStaleTimerCallbackDoesNotCommit(t *testing.T) {
	t.Parallel()

	// A long delay keeps the real timer from firing during the test;
	// callbacks are driven by hand.
	m := NewManager(WithCoalesceDelay(time.Hour))
	defer m.Close()

	m.SetInitialState("v0", editor.Selection{})

	m.RecordChange("v1", editor.Selection{})
	firstGen := m.timerGen
	m.RecordChange("v1x", editor.Selection{})

	// A callback of the replaced timer that was already waiting on the
	// mutex must not commit the group the second change reopened.
	m.timerFired(firstGen)
	assert.Empty(t, m.UndoLabels())

	// The live generation commits as usual.
	m.timerFired(m.timerGen)
	require.Len(t, m.UndoLabels(), 1)
	assert.Equal(t, "v1x", m.Current().Text)
}
