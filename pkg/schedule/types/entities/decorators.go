package entities

import (
	"time"

	"github.com/diwise/project-attributes/pkg/schedule/types/values"
)

// A sets a raw attribute value exactly as an upstream parser would have stored it
func A(name string, raw any) EntityDecoratorFunc {
	return func(e *EntityImpl) { e.bag.Set(name, raw) }
}

// FromBag copies every entry of a parsed attribute bag, keeping its order
func FromBag(bag *values.Map) EntityDecoratorFunc {
	return func(e *EntityImpl) {
		bag.ForEach(func(name string, raw any) {
			e.bag.Set(name, raw)
		})
	}
}

func Text(name string, value string) EntityDecoratorFunc {
	return A(name, value)
}

func Number(name string, value float64) EntityDecoratorFunc {
	return A(name, value)
}

func Flag(name string, value bool) EntityDecoratorFunc {
	return A(name, value)
}

func Date(name string, value time.Time) EntityDecoratorFunc {
	return A(name, value)
}

func Duration(name string, magnitude float64, units values.TimeUnit) EntityDecoratorFunc {
	return A(name, values.NewDuration(magnitude, units))
}

func UniqueID(id int64) EntityDecoratorFunc {
	return A("unique_id", id)
}

func Name(name string) EntityDecoratorFunc {
	return Text("name", name)
}
