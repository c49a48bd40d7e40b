package workers

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-agenthub/internal/usecases"
)

// SessionJanitor is a runnable that periodically evicts idle chat sessions.
type SessionJanitor struct {
	EvictIdleSessions   usecases.EvictIdleSessions `resolve:""`
	Logger              *log.Logger                `resolve:""`
	Interval            time.Duration              `config:"SESSION_JANITOR_INTERVAL" default:"1m"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic eviction of idle sessions.
func (j SessionJanitor) Run(ctx context.Context) error {
	j.Logger.Println("SessionJanitor: running...")
	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			evicted, err := j.EvictIdleSessions.Execute(ctx)
			if err != nil {
				j.Logger.Printf("SessionJanitor: error evicting idle sessions: %v", err)
			} else if evicted > 0 {
				j.Logger.Printf("SessionJanitor: evicted %d idle session(s)", evicted)
			}
			if j.workerExecutionChan != nil {
				j.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			j.Logger.Println("SessionJanitor: stopping...")
			return nil
		}
	}
}
