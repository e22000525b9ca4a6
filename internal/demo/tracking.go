package demo

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/debug"
	"github.com/Faultbox/scenelab/internal/engine/lighting"
	"github.com/Faultbox/scenelab/internal/engine/scene"
)

// SpinY sets pivot's rotation to angle radians about Y through a
// quaternion, replacing any previous rotation.
func SpinY(pivot *scene.Node, angle float32) {
	pivot.SetQuaternion(mgl32.QuatRotate(angle, mgl32.Vec3{0, 1, 0}))
}

// FollowLight points l at, or moves it to, the world position of node:
// directional and spot lights aim their target at it, a point light moves
// onto it. Other kinds are not positional and are left alone. The helper,
// if any, is refreshed afterwards.
func FollowLight(l lighting.Light, node *scene.Node, helper debug.Helper) {
	p := node.WorldPosition()
	switch l := l.(type) {
	case *lighting.Directional:
		l.Target.Position = p
	case *lighting.Spot:
		l.Target.Position = p
	case *lighting.Point:
		l.Position = p
	case *lighting.Ambient, *lighting.Hemisphere, *lighting.RectArea, *lighting.Environment:
	default:
		panic(fmt.Sprintf("demo: unhandled light kind %v", l.Kind()))
	}
	if helper != nil {
		helper.Update()
	}
}

// FollowCamera moves cam to the world position of node and, when lookAt is
// set, turns it toward lookAt's world position.
func FollowCamera(cam camera.Camera, node, lookAt *scene.Node) {
	n := cam.Base()
	n.Position = node.WorldPosition()
	if lookAt != nil {
		n.LookAt(lookAt.WorldPosition())
	}
}
