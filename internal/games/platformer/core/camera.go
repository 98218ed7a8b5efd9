package core

// Camera is the translation applied to level pixels to get screen pixels.
type Camera struct {
	X, Y float64
}

// FollowCamera centers the player on screen without showing anything past the
// level edges. A level smaller than the screen on an axis is centered on it.
func FollowCamera(screenW, screenH, levelW, levelH, px, py float64) Camera {
	return Camera{
		X: followAxis(screenW, levelW, px),
		Y: followAxis(screenH, levelH, py),
	}
}

func followAxis(screen, level, pos float64) float64 {
	if screen >= level {
		return screen/2 - level/2
	}
	c := screen/2 - pos
	return min(max(c, screen-level), 0)
}

// ToScreen converts a level pixel position to screen pixels.
func (c Camera) ToScreen(x, y float64) (float64, float64) {
	return x + c.X, y + c.Y
}
