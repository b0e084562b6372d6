package flappy

// autopilotMargin is how far below the target the bird's center may sink
// before the autopilot flaps.
const autopilotMargin = 25

// Autopilot decides whether to flap this frame: it aims the bird's center at
// the middle of the next gap it has not yet cleared, or at mid-screen when
// no pipe is ahead.
func Autopilot(snap Snapshot) bool {
	if snap.Over {
		return false
	}

	target := snap.Height / 2
	for _, p := range snap.Pipes {
		if p.Top.Right() > snap.Bird.X {
			target = p.GapCenter()
			break
		}
	}

	return snap.Bird.CenterY() > target+autopilotMargin
}
