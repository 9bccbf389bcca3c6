package component

// Variant tags what kind of thing an entity is
type Variant uint8

const (
	VariantUnknown Variant = iota
	VariantPlayer
	VariantTree
	VariantZombie
)

func (v Variant) String() string {
	switch v {
	case VariantPlayer:
		return "Player"
	case VariantTree:
		return "Tree"
	case VariantZombie:
		return "Zombie"
	default:
		return "Unknown"
	}
}

// Frame is the animation frame tag forwarded to the renderer
type Frame uint8

const (
	FrameDefault Frame = iota
	FrameWalk1
	FrameWalk2
	FrameReadyAttack
	FrameAttack
	FrameDead
)

func (f Frame) String() string {
	switch f {
	case FrameWalk1:
		return "Walk1"
	case FrameWalk2:
		return "Walk2"
	case FrameReadyAttack:
		return "ReadyAttack"
	case FrameAttack:
		return "Attack"
	case FrameDead:
		return "Dead"
	default:
		return "Default"
	}
}

// Texture is the asset tag forwarded to the renderer
type Texture uint8

const (
	TextureNone Texture = iota
	TextureGrass
	TexturePlayer
	TextureTree
	TextureZombie
)

func (t Texture) String() string {
	switch t {
	case TextureGrass:
		return "Grass"
	case TexturePlayer:
		return "Player"
	case TextureTree:
		return "Tree"
	case TextureZombie:
		return "Zombie"
	default:
		return "None"
	}
}
