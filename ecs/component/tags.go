package component

// PlayerTag marks the locally controlled actor.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// BotTag marks an actor driven by a script.
type BotTag struct{}

var BotTagComponent = NewComponent[BotTag]()

// ReplicaTag marks an actor whose motion is simulated elsewhere.
type ReplicaTag struct{}

var ReplicaTagComponent = NewComponent[ReplicaTag]()

// SolidTag marks static level geometry.
type SolidTag struct{}

var SolidTagComponent = NewComponent[SolidTag]()
