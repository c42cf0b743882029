package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	timeLayout = "15:04:05"
	dateLayout = "Monday, 02 January 2006"
)

// showClock redraws z's local time every second. SIGINT ends the loop
// normally; other signals and context cancellation are returned as errors.
func (a *app) showClock(ctx context.Context, z zone) error {
	for {
		now := a.clock.Now()
		a.drawClock(z, localTime(now, z))

		next := now.Truncate(time.Second).Add(time.Second)
		if err := a.wait(ctx, next.Sub(now)); err != nil {
			if errors.Is(err, errInterrupted) {
				fmt.Fprintln(a.out)
				fmt.Fprintln(a.out, a.pal.yellow+"Returning to menu..."+a.pal.reset)
				return nil
			}
			return err
		}
	}
}

// wait blocks for d or until a signal arrives or ctx is done.
func (a *app) wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case sig := <-a.signals:
		return signalErr(sig)
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *app) drawClock(z zone, t time.Time) {
	p := a.pal
	blank := strings.Repeat(" ", screenWidth)

	fmt.Fprint(a.out, p.clear)
	p.header(a.out)
	fmt.Fprintln(a.out, p.bold+p.yellow+"Timezone: "+p.white+z.name+p.reset)
	fmt.Fprintln(a.out, p.bold+p.yellow+"Offset:   "+p.white+"UTC "+formatOffset(z.offsetHours)+p.reset)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, p.bgBlack+p.bold+p.green+blank+p.reset)
	fmt.Fprintln(a.out, p.bgBlack+p.bold+p.green+centered(t.Format(timeLayout))+p.reset)
	fmt.Fprintln(a.out, p.bgBlack+p.bold+p.cyan+centered(t.Format(dateLayout))+p.reset)
	fmt.Fprintln(a.out, p.bgBlack+p.bold+p.green+blank+p.reset)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, p.green+"Press Ctrl+C to return to menu"+p.reset)
}

// centered pads s on both sides to screenWidth.
func centered(s string) string {
	n := screenWidth - len(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(" ", n/2) + s + strings.Repeat(" ", n-n/2)
}
