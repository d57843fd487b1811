package systems

import (
	"math"

	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/shared/gamemath"
	"github.com/automoto/leapfrog/shared/messages"
	"github.com/automoto/leapfrog/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	level := GetLevel(e)
	if level == nil {
		return
	}
	cfg := level.Config

	updateScreenShake(cameraEntry, camera, level)
	updateTint(cameraEntry, level)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	targetX, targetY := components.Object.Get(playerEntry).Center()

	// Camera bounds: keep the view inside the level
	halfW := float64(cfg.Camera.Width) / 2
	halfH := float64(cfg.Camera.Height) / 2
	targetX = clampView(targetX, halfW, cfg.Level.Width)
	targetY = clampView(targetY, halfH, cfg.Level.Height)

	k := gamemath.SmoothingFactor(cfg.Camera.FollowSmoothing, level.Delta.Seconds())
	camera.Position.X += (targetX - camera.Position.X) * k
	camera.Position.Y += (targetY - camera.Position.Y) * k
}

// SnapCamera centres the camera on (x, y) without smoothing.
func SnapCamera(e *ecs.ECS, x, y float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	level := GetLevel(e)
	camera := components.Camera.Get(cameraEntry)
	if level != nil {
		x = clampView(x, float64(level.Config.Camera.Width)/2, level.Config.Level.Width)
		y = clampView(y, float64(level.Config.Camera.Height)/2, level.Config.Level.Height)
	}
	camera.Position = dmath.Vec2{X: x, Y: y}
}

func clampView(v, half, extent float64) float64 {
	if extent <= 2*half {
		return extent / 2
	}
	return gamemath.Clamp(v, half, extent-half)
}

// updateScreenShake recomputes the shake offset and removes finished shakes
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData, level *components.LevelData) {
	camera.Shake = dmath.Vec2{}
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed += level.Delta
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
		return
	}

	// Decaying intensity, scaled to the view like a fractional camera shake
	progress := 1 - float64(shake.Elapsed)/float64(shake.Duration)
	t := shake.Elapsed.Seconds() * 60
	camera.Shake = dmath.Vec2{
		X: math.Sin(t*1.1) * shake.Intensity * float64(level.Config.Camera.Width) * progress,
		Y: math.Cos(t*1.3) * shake.Intensity * float64(level.Config.Camera.Height) * progress,
	}
}

func updateTint(cameraEntry *donburi.Entry, level *components.LevelData) {
	if !cameraEntry.HasComponent(components.Tint) {
		return
	}
	tint := components.Tint.Get(cameraEntry)
	tint.Elapsed += level.Delta
	if tint.Elapsed >= tint.Duration {
		cameraEntry.RemoveComponent(components.Tint)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, shake messages.CameraShake) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || shake.Duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		current := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if shake.Intensity > current.Intensity {
			current.Intensity = shake.Intensity
			current.Duration = shake.Duration
			current.Elapsed = 0
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
		Intensity: shake.Intensity,
		Duration:  shake.Duration,
	})
}

// TriggerTint starts a flash or fade overlay, replacing any running one.
func TriggerTint(ecs *ecs.ECS, tint messages.CameraTint) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || tint.Duration <= 0 {
		return
	}
	if !cameraEntry.HasComponent(components.Tint) {
		cameraEntry.AddComponent(components.Tint)
	}
	components.Tint.SetValue(cameraEntry, components.TintData{
		Color:    tint.Color,
		Alpha:    tint.Alpha,
		Duration: tint.Duration,
		FadeIn:   tint.FadeIn,
	})
}
