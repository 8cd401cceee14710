package hitchart

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/shipwright/internal/ship/dice"
	"github.com/cory-johannsen/shipwright/internal/ship/zone"
)

// Hit is one resolved strike: the direction it came from, the die roll, and
// the zone the chart mapped it to.
type Hit struct {
	Direction Direction
	Roll      int
	Zone      zone.Code
}

// Roller resolves hit die rolls against a chart, logging each roll at debug
// level so combat simulations leave an audit trail.
type Roller struct {
	src    dice.Source
	logger *zap.Logger
}

// NewRoller creates a Roller that rolls with src and logs to logger.
//
// Precondition: src and logger must be non-nil.
func NewRoller(src dice.Source, logger *zap.Logger) *Roller {
	if src == nil || logger == nil {
		panic("hitchart: NewRoller precondition violated: src and logger must be non-nil")
	}
	return &Roller{src: src, logger: logger}
}

// Roll rolls the chart's hit die once for an attack from d and locates the
// struck zone.
//
// Postcondition: Returns the hit and true, or false when the chart has no
// column for d.
func (r *Roller) Roll(c Chart, d Direction) (Hit, bool) {
	roll := dice.RollDie(c.HitDie, r.src)
	code, ok := c.Locate(d, roll)
	if !ok {
		r.logger.Debug("hit roll had no matching column",
			zap.Stringer("direction", d),
			zap.Int("roll", roll),
		)
		return Hit{}, false
	}
	r.logger.Debug("hit roll",
		zap.Stringer("direction", d),
		zap.Int("die", c.HitDie),
		zap.Int("roll", roll),
		zap.String("zone", string(code)),
	)
	return Hit{Direction: d, Roll: roll, Zone: code}, true
}
