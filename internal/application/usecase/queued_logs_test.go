package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueuedLogs_FlushKeepsOrder(t *testing.T) {
	console := &fakeConsole{}
	logs := &queuedLogs{ConsoleInterface: console}

	logs.LogInfo("Total cost: $%s", "1775.95")
	logs.LogWarning("period end before start")
	logs.LogInfo("Monthly breakdown for %s", "2024-05")
	logs.Printf("printed %d", 1)

	assert.Empty(t, console.infos)
	assert.Empty(t, console.warnings)
	assert.Equal(t, []string{"printed 1"}, console.printed)

	logs.flush()
	assert.Equal(t, []string{"Total cost: $1775.95", "Monthly breakdown for 2024-05"}, console.infos)
	assert.Equal(t, []string{"period end before start"}, console.warnings)

	logs.flush()
	assert.Len(t, console.infos, 2)
}
