package sprite

// Transform maps one drawing dimension of s.
type Transform func(s *Sprite, v float64) float64

// Effector rewrites drawing geometry without touching simulation state.
// Nil transforms, and the zero Effector, leave values unchanged.
type Effector struct {
	X      Transform
	Y      Transform
	Width  Transform
	Height Transform
}

// Identity is the effector every sprite starts with.
var Identity = Effector{}

func apply(t Transform, s *Sprite, v float64) float64 {
	if t == nil {
		return v
	}
	return t(s, v)
}
