package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, ProviderOllama, cfg.Provider)
	assert.Equal(t, 0, cfg.MaxRetries)
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 30000, cfg.TaskTimeout(TaskPlanChat))
	assert.Equal(t, 30000, cfg.TaskTimeout("unknown"))
}

func TestWithTaskTimeout(t *testing.T) {
	base := DefaultConfig()

	cfg := base.WithTaskTimeout(TaskPlanChat, 1500)
	assert.Equal(t, 1500, cfg.TaskTimeout(TaskPlanChat))
	assert.Equal(t, 30000, base.TaskTimeout(TaskPlanChat), "original config must not change")

	assert.Equal(t, base.TaskTimeout(TaskPlanChat), base.WithTaskTimeout(TaskPlanChat, 0).TaskTimeout(TaskPlanChat))
}
