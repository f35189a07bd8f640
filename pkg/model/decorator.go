package model

// Decorator adjusts a configuration before it reaches a renderer. Decorators
// receive a private copy and may edit it in place.
type Decorator interface {
	Decorate(*FormConfig) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*FormConfig) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(form *FormConfig) error {
	return fn(form)
}
