// Package stream provides the push-based value streams consumed by the
// render engine.
//
// An Observable delivers values to subscribers through a next callback and
// signals completion through an optional complete callback. Subscribing
// returns an unsubscribe function. Observer errors are returned to the
// emitter: Subject.Next reports every observer error joined together, so a
// failing re-render surfaces at the call site that caused it.
//
// # Types
//
//   - Subject: multicast stream, values go to current subscribers only
//   - Behavior: Subject that replays its current value to new subscribers
//   - Map, Distinct, CombineLatest, Of: derived streams
//   - SubscribeState: subscribe with a per-value disposal handle that is
//     released when the next value arrives
//
// Untyped is the type-erased view used to recognize a stream at runtime
// inside attribute maps. Every stream in this package implements it; Erase
// adapts a foreign Observable.
//
// Streams are safe to subscribe to from multiple goroutines, but emissions
// that drive a renderer must be serialized with it.
package stream
