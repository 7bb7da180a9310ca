package kafka

import (
	"context"
	"math/rand"
	"time"
)

// backoff — экспоненциальная пауза между повторами с потолком max и equal-jitter.
type backoff struct {
	initial time.Duration
	max     time.Duration
	rnd     *rand.Rand
}

func newBackoff(initial, maxDelay time.Duration, seed int64) *backoff {
	if initial <= 0 {
		initial = time.Second
	}
	if maxDelay < initial {
		maxDelay = initial
	}
	return &backoff{initial: initial, max: maxDelay, rnd: rand.New(rand.NewSource(seed))}
}

// next — следующая пауза: удвоение, но не больше max.
func (b *backoff) next(current time.Duration) time.Duration {
	if current <= 0 {
		return b.initial
	}
	if current*2 > b.max {
		return b.max
	}
	return current * 2
}

// jitter — половина d фиксирована, вторая половина случайна: реплики не долбят брокер синхронно.
func (b *backoff) jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(b.rnd.Int63n(int64(d-half)+1))
}

// pause — короткая пауза после временной ошибки обработки.
func (b *backoff) pause() time.Duration {
	return b.jitter(min(b.initial, 500*time.Millisecond))
}

// wait — спит d или выходит по контексту; false — контекст отменён.
func wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
