// Package core provides the reactive primitives that view models publish
// their state through.
//
// # Published Properties
//
// [Observable] holds a value and notifies listeners on every Set:
//
//	count := core.NewObservable(0)
//	unsub := count.AddListener(func(v int) { fmt.Println(v) })
//	count.Set(1) // prints 1
//	unsub()
//
// Delivery is synchronous and follows subscription order. Nothing is
// batched: two writes produce two notifications, even when the value does
// not change.
//
// [Signal] broadcasts events that have no stored value, and [Notifier]
// broadcasts bare change ticks.
//
// # Views
//
// Views mirror a property with [Observable.Bind], which delivers the
// current value immediately and every later change. Collect the returned
// unsubscribe functions in [Subscriptions] and dispose them together.
//
// # Constructor Conventions
//
// View models and services use NewX() constructors returning pointers.
// Immutable configuration (colors, spacings, geometry) are plain structs.
package core
