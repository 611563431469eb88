// internal/logger/events.go
package logger

import (
	"context"
	"log/slog"

	"thermal-td/internal/event"
)

// EventListener пишет события симуляции в лог. Спавн и убийства идут на debug,
// остальное на info.
func EventListener(l *slog.Logger) event.Listener {
	ctx := context.Background()
	return event.ListenerFunc(func(e event.Event) {
		level := slog.LevelInfo
		if e.Type == event.EnemySpawned || e.Type == event.EnemyKilled {
			level = slog.LevelDebug
		}
		switch data := e.Data.(type) {
		case event.EnemyData:
			l.Log(ctx, level, string(e.Type), "enemy", data.ID, "x", data.X, "y", data.Y)
		case event.TowerData:
			l.Log(ctx, level, string(e.Type), "tower", data.Index, "x", data.X, "y", data.Y)
		case event.DifficultyData:
			l.Log(ctx, level, string(e.Type),
				"level", data.Level,
				"heat_per_shot", data.HeatPerShot,
				"dissipation", data.DissipationRate)
		default:
			l.Log(ctx, level, string(e.Type))
		}
	})
}
