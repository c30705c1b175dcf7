package component

// ScriptInput drives an actor's Input from a tengo script.
type ScriptInput struct {
	Path string
	// Frame counts script updates.
	Frame int
}

var ScriptInputComponent = NewComponent[ScriptInput]()
