package object

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starseeker/geom"
)

// CameraCheck updates InCamera against the viewport view.
//
// An object is visible when its visual box, grown by OffCameraRadius, touches
// the viewport. A dying object whose death effect is still playing stays
// visible; any other dying object that leaves the viewport stops existing.
// A live object that drops out of view gets a deferred reset, applied by
// ApplyDeferredReset once the camera stops moving.
func CameraCheck(o Object, view cp.BB) {
	b := o.Obj()
	if !b.Exist {
		b.InCamera = false
		return
	}

	was := b.InCamera
	b.InCamera = geom.Overlap(geom.Grow(b.VisualBB(), b.OffCameraRadius), view)
	if b.InCamera {
		return
	}

	if b.Dying {
		if fx, ok := o.(DeathEffect); ok && fx.DeathEffectActive() {
			b.InCamera = true
			return
		}
		b.Exist = false
		b.Dying = false
		return
	}

	if was {
		if _, ok := o.(Resetter); ok {
			b.resetPending = true
		}
	}
	if h, ok := o.(OutsideCameraHandler); ok {
		h.OutsideCamera()
	}
}

// ApplyDeferredReset resets an object flagged by CameraCheck, but never while
// the camera is scrolling and never while the object is back in view.
func ApplyDeferredReset(o Object, cameraMoving bool) bool {
	b := o.Obj()
	if !b.resetPending || b.InCamera || cameraMoving {
		return false
	}
	b.resetPending = false
	if r, ok := o.(Resetter); ok && b.Exist && !b.Dying {
		r.Reset()
		return true
	}
	return false
}
