package usecase

import "github.com/diillson/aws-bill-analyzer-go/internal/shared/types"

// queuedLogs retém as mensagens de log até flush, para que não se misturem
// com os quadros de um spinner. As demais chamadas passam direto.
type queuedLogs struct {
	types.ConsoleInterface
	pending []func()
}

func (q *queuedLogs) LogInfo(format string, a ...interface{}) {
	q.pending = append(q.pending, func() { q.ConsoleInterface.LogInfo(format, a...) })
}

func (q *queuedLogs) LogWarning(format string, a ...interface{}) {
	q.pending = append(q.pending, func() { q.ConsoleInterface.LogWarning(format, a...) })
}

func (q *queuedLogs) LogError(format string, a ...interface{}) {
	q.pending = append(q.pending, func() { q.ConsoleInterface.LogError(format, a...) })
}

func (q *queuedLogs) LogSuccess(format string, a ...interface{}) {
	q.pending = append(q.pending, func() { q.ConsoleInterface.LogSuccess(format, a...) })
}

// flush emite as mensagens retidas na ordem original.
func (q *queuedLogs) flush() {
	for _, emit := range q.pending {
		emit()
	}
	q.pending = nil
}
