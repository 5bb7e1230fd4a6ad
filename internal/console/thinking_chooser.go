package console

import (
	"time"

	mb "github.com/saeidalz13/sea-battle/models/battleship"
)

// ThinkingChooser makes the computer look like it is thinking: it
// waits a random time in [min, max] before asking the wrapped
// chooser for a target.
type ThinkingChooser struct {
	chooser  mb.TargetChooser
	min, max time.Duration
	rng      mb.Rand
	sleep    func(time.Duration)
}

var _ mb.TargetChooser = (*ThinkingChooser)(nil)

func NewThinkingChooser(chooser mb.TargetChooser, min, max time.Duration, rng mb.Rand) *ThinkingChooser {
	if max < min {
		max = min
	}

	return &ThinkingChooser{
		chooser: chooser,
		min:     min,
		max:     max,
		rng:     rng,
		sleep:   time.Sleep,
	}
}

func (tc *ThinkingChooser) ChooseTarget() (mb.Coordinates, error) {
	tc.sleep(tc.delay())
	return tc.chooser.ChooseTarget()
}

// millisecond resolution
func (tc *ThinkingChooser) delay() time.Duration {
	span := int((tc.max - tc.min) / time.Millisecond)
	if span <= 0 {
		return tc.min
	}
	return tc.min + time.Duration(tc.rng.Intn(span+1))*time.Millisecond
}
