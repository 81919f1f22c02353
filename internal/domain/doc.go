// Package domain contains the core business entities, value objects, and
// domain logic of the application. Entities own their validation rules and
// report every rule violation as an error wrapping ErrInvalidOperation.
package domain
