package utils

import (
	"context"
	"time"
)

// SleepFunc é a assinatura usada pelos serviços para pausas canceláveis
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep aguarda d ou até o contexto ser cancelado
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
