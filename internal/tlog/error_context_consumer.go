package tlog

import "github.com/sirkon/errors"

// errorContextConsumer собирает структурированный контекст ошибки в порядке
// его добавления.
type errorContextConsumer struct {
	vars []contextVar
}

type contextVar struct {
	name  string
	value any
}

func (c *errorContextConsumer) add(name string, value any) {
	c.vars = append(c.vars, contextVar{
		name:  name,
		value: value,
	})
}

// Bool to satisfy errors.ErrorContextConsumer
func (c *errorContextConsumer) Bool(name string, value bool) { c.add(name, value) }

// Int to satisfy errors.ErrorContextConsumer
func (c *errorContextConsumer) Int(name string, value int) { c.add(name, value) }

// Int8 to satisfy errors.ErrorContextConsumer
func (c *errorContextConsumer) Int8(name string, value int8) { c.add(name, value) }

// Int16 to satisfy errors.ErrorContextConsumer
func (c *errorContextConsumer) Int16(name string, value int16) { c.add(name, value) }

// Int32 to satisfy errors.ErrorContextConsumer
func (c *errorContextConsumer) Int32(name string, value int32) { c.add(name, value) }

// Int64 to satisfy errors.ErrorContextConsumer
func (c *errorContextConsumer) Int64(name string, value int64) { c.add(name, value) }

// Uint to satisfy errors.ErrorContextConsumer
func (c *errorContextConsumer) Uint(name string, value uint) { c.add(name, value) }

// Uint8 to satisfy errors.ErrorContextConsumer
func (c *errorContextConsumer) Uint8(name string, value uint8) { c.add(name, value) }

// Uint16 to satisfy errors.ErrorContextConsumer
func (c *errorContextConsumer) Uint16(name string, value uint16) { c.add(name, value) }

// Uint32 to satisfy errors.ErrorContextConsumer
func (c *errorContextConsumer) Uint32(name string, value uint32) { c.add(name, value) }

// Uint64 to satisfy errors.ErrorContextConsumer
func (c *errorContextConsumer) Uint64(name string, value uint64) { c.add(name, value) }

// Float32 to satisfy errors.ErrorContextConsumer
func (c *errorContextConsumer) Float32(name string, value float32) { c.add(name, value) }

// Float64 to satisfy errors.ErrorContextConsumer
func (c *errorContextConsumer) Float64(name string, value float64) { c.add(name, value) }

// String to satisfy errors.ErrorContextConsumer
func (c *errorContextConsumer) String(name string, value string) { c.add(name, value) }

// Any to satisfy errors.ErrorContextConsumer
func (c *errorContextConsumer) Any(name string, value interface{}) { c.add(name, value) }

var _ errors.ErrorContextConsumer = &errorContextConsumer{}
