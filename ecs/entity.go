package ecs

import "strconv"

// Entity packs a slot id in the low 32 bits and the slot's generation in
// the high 32 bits, so a handle to a destroyed entity never matches the
// entity that later reuses its slot. The zero Entity is never allocated.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// String formats the entity as id or id#generation once the slot is reused.
func (e Entity) String() string {
	id := strconv.FormatUint(uint64(e.id()), 10)
	if gen := e.generation(); gen > 0 {
		return id + "#" + strconv.FormatUint(uint64(gen), 10)
	}
	return id
}

func (e Entity) Valid() bool {
	return e.id() != 0
}
