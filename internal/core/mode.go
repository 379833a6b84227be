package core

type Mode int

const (
	ModeProd Mode = iota
	ModeDev
)
