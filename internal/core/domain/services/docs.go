// Package services contains domain services that coordinate business logic
// across aggregates. Domain services are stateless and operate on domain
// objects passed to them, keeping persistence and transport concerns in the
// application and adapter layers.
package services
