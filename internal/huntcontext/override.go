package huntcontext

import (
	"fmt"
	"time"
)

// Override is the response section the orchestrator attaches when the
// current situation contradicts generic recommendations.
type Override struct {
	Context        Context `json:"context"`
	Action         Action  `json:"action"`
	PrimaryMessage string  `json:"primary_message"`
	TimeRemaining  string  `json:"time_remaining,omitempty"`
}

// BuildOverride produces the orchestrator's context_override section
// for c. The message intentionally replaces generic thermal
// recommendations when they'd be misleading this close to the edges
// of legal light.
func BuildOverride(c Classification) Override {
	o := Override{Context: c.Context, Action: c.Action}
	switch c.Action {
	case StayPut:
		if c.Context == EndOfDay {
			o.PrimaryMessage = "STAY PUT — movement is over for the day"
		} else {
			o.PrimaryMessage = "STAY PUT — remain on position"
		}
	case LastChance:
		o.PrimaryMessage = fmt.Sprintf("LAST CHANCE — legal light ends in %s, quick setup only", c.RemainingLight.Round(time.Minute))
	case ScoutMode:
		o.PrimaryMessage = "SCOUT MODE — use remaining time to gather intel"
	case PlanTomorrow:
		o.PrimaryMessage = "PLAN TOMORROW — outside the useful pre-hunt window"
	case PackOut:
		o.PrimaryMessage = "PACK OUT — legal light has ended"
	}
	if c.RemainingLight > 0 {
		o.TimeRemaining = c.RemainingLight.String()
	}
	return o
}
