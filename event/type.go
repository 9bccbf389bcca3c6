package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick advances the simulation by a fixed step
	// Trigger: Host, once per frame
	// Consumer: Tick pipeline (mapgen, tilemap, bot, movement, ability, flash) | Payload: TickPayload
	EventTick EventType = iota

	// EventPostTick marks the render phase after Tick processing
	// Trigger: Host, after Tick
	// Consumer: RenderSystem | Payload: TickPayload
	EventPostTick

	// EventCollision reports that a moving entity was pushed out of a solid neighbor
	// Trigger: MovementSystem
	// Consumer: CollisionSystem (advisory) | Payload: CollisionPayload
	EventCollision

	// EventRestart clears the world and spawns a new player
	// Trigger: Host at startup or on player request
	// Consumer: RestartSystem | Payload: nil
	EventRestart

	// EventSpawn creates an entity with variant defaults
	// Trigger: RestartSystem, MapGenSystem
	// Consumer: SpawnSystem | Payload: SpawnPayload
	EventSpawn

	// EventDespawn removes an entity from the store and its tile
	// Trigger: DamageSystem on death
	// Consumer: DespawnSystem | Payload: EntityPayload
	EventDespawn

	// EventPlayerInput applies one frame of player intent
	// Trigger: Host
	// Consumer: InputSystem | Payload: PlayerInputPayload
	EventPlayerInput

	// EventAbilityActivated fires when a cooldown crosses its activation threshold
	// Trigger: AbilitySystem
	// Consumer: AbilityActivatedSystem | Payload: EntityPayload
	EventAbilityActivated

	// EventAbilityHit reports a melee swing connecting with a target
	// Trigger: AbilityActivatedSystem
	// Consumer: AbilityHitSystem | Payload: AbilityHitPayload
	EventAbilityHit

	// EventApplyDamage subtracts health from a target
	// Trigger: AbilityHitSystem
	// Consumer: DamageSystem | Payload: ApplyDamagePayload
	EventApplyDamage

	// EventTypeCount is the number of event types, keep last
	EventTypeCount
)

// String returns the registered name of the event type
func (t EventType) String() string {
	return GetEventName(t)
}
