package event

import (
	"strings"
)

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

// RegisterType maps a string name to an EventType
func RegisterType(name string, et EventType) {
	nameToType[strings.ToLower(name)] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a name, case-insensitive
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[strings.ToLower(name)]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "Unknown"
}

func init() {
	RegisterType("Tick", EventTick)
	RegisterType("PostTick", EventPostTick)
	RegisterType("Collision", EventCollision)
	RegisterType("Restart", EventRestart)
	RegisterType("Spawn", EventSpawn)
	RegisterType("Despawn", EventDespawn)
	RegisterType("PlayerInput", EventPlayerInput)
	RegisterType("AbilityActivated", EventAbilityActivated)
	RegisterType("AbilityHit", EventAbilityHit)
	RegisterType("ApplyDamage", EventApplyDamage)
}
