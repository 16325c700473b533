// Package ecs is a small entity-component-system core.
//
// Entities are bare ids, components are plain structs stored per (entity,
// type) pair, and filters are cached, push-maintained views over the
// entities holding a required set of component types. All mutation goes
// through World, which keeps component state and filter membership in step.
//
// A World is not safe for concurrent use. Systems run on the caller's
// goroutine in registration order.
package ecs
