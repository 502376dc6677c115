// Package fixture resolves exception handlers on test fixture instances.
//
// Resolution is a pure lookup: given a fixture instance and a method name,
// find a method accepting a single argument assignable from the exception
// type. Absence is a normal, representable outcome; resolution never
// errors. The reflection capability lookup is isolated here so the rest of
// the engine only sees resolved HandlerFunc values.
package fixture

import (
	"reflect"

	"github.com/nisha-kaushik/nunit/pkg/throw"
)

// Descriptor describes a fixture type to the expectation engine.
type Descriptor interface {
	// TypeName returns the fixture's type name for diagnostics.
	TypeName() string

	// HandlesExceptions reports whether the fixture declares the
	// exception-handling capability marker.
	HandlesExceptions() bool

	// FindHandler finds a method with the given name accepting a single
	// exception argument. The second return value reports whether a
	// suitable method was found; a method with the wrong signature is
	// treated as not found.
	FindHandler(name string) (throw.HandlerFunc, bool)
}

// Describe builds a reflection-backed Descriptor for a fixture instance.
//
//nolint:ireturn // interface for polymorphism
func Describe(instance any) Descriptor {
	return &reflectDescriptor{
		instance: instance,
		value:    reflect.ValueOf(instance),
	}
}

type reflectDescriptor struct {
	instance any
	value    reflect.Value
}

var exceptionType = reflect.TypeFor[*throw.Exception]()

// TypeName returns the fixture's type name.
func (d *reflectDescriptor) TypeName() string {
	if d.instance == nil {
		return "<nil>"
	}

	return reflect.TypeOf(d.instance).String()
}

// HandlesExceptions reports whether the fixture implements throw.Handler.
func (d *reflectDescriptor) HandlesExceptions() bool {
	_, ok := d.instance.(throw.Handler)

	return ok
}

// FindHandler looks up a method by name and checks its signature.
func (d *reflectDescriptor) FindHandler(name string) (throw.HandlerFunc, bool) {
	if d.instance == nil || name == "" {
		return nil, false
	}

	method := d.value.MethodByName(name)
	if !method.IsValid() {
		return nil, false
	}

	t := method.Type()
	if t.NumIn() != 1 || t.NumOut() != 0 || !exceptionType.AssignableTo(t.In(0)) {
		return nil, false
	}

	return func(ex *throw.Exception) {
		method.Call([]reflect.Value{reflect.ValueOf(ex)})
	}, true
}
