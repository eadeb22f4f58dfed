package models

const (
	IDField         = "_id"
	AssignedToField = "assignedTo"
)

// Task is a schema-less task document. Only AssignedToField carries meaning
// for the API: tasks are listed by it.
type Task map[string]any

type User map[string]any
