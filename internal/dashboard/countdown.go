package dashboard

import (
	"sync"
	"time"
)

// Remaining is the time left until an appointment starts, broken into
// display components.
type Remaining struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Until computes the remaining time from now to target. The second return
// is false when the target has already passed.
func Until(target, now time.Time) (Remaining, bool) {
	d := target.Sub(now)
	if d <= 0 {
		return Remaining{}, false
	}
	total := int(d / time.Second)
	return Remaining{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}, true
}

// Countdown ticks once a second toward a target instant and publishes the
// remaining time on C. Once the target passes it emits a final zero value
// and stops on its own; Stop releases the ticker early.
type Countdown struct {
	C chan Remaining

	stop     chan struct{}
	stopOnce sync.Once
}

func NewCountdown(target time.Time) *Countdown {
	c := &Countdown{
		C:    make(chan Remaining, 1),
		stop: make(chan struct{}),
	}
	go c.run(target)
	return c
}

func (c *Countdown) run(target time.Time) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	defer close(c.C)

	for {
		rem, ok := Until(target, time.Now())
		select {
		case c.C <- rem:
		default:
		}
		if !ok {
			return
		}
		select {
		case <-ticker.C:
		case <-c.stop:
			return
		}
	}
}

func (c *Countdown) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}
