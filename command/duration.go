package command

import (
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/driver"
)

const (
	startQuery = 0
	endQuery   = 1
)

// Duration measures device time between a DurationStart and a DurationEnd recorded in a Buffer
type Duration struct {
	queryPool driver.QueryPool
	period    float64
}

func NewDuration(device driver.ComputeDevice) (*Duration, error) {
	queryPool, err := device.CreateQueryPool(2)
	if err != nil {
		return nil, err
	}

	return &Duration{
		queryPool: queryPool,
		period:    device.TimestampPeriod(),
	}, nil
}

// Nanoseconds reads both timestamps back and returns the time between them. It must be called after
// the buffer that recorded them has run.
func (d *Duration) Nanoseconds() (int64, error) {
	results, err := d.queryPool.Results(startQuery, 2)
	if err != nil {
		return 0, err
	}
	if len(results) != 2 {
		return 0, errors.Errorf("expected 2 timestamp results, got %d", len(results))
	}
	if results[endQuery] < results[startQuery] {
		return 0, errors.Wrapf(crucible.ErrInvalidState, "end timestamp %d precedes start timestamp %d",
			results[endQuery], results[startQuery])
	}

	ticks := float64(results[endQuery] - results[startQuery])
	return int64(math.Round(ticks * d.period)), nil
}

func (d *Duration) Duration() (time.Duration, error) {
	ns, err := d.Nanoseconds()
	return time.Duration(ns), err
}

func (d *Duration) Destroy() {
	d.queryPool.Destroy()
}
