// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain aggregates to keep the domain layer pure and free
// from ORM concerns.
//
// Key Principles:
// 1. Domain aggregates should be free of GORM tags and infrastructure concerns
// 2. Persistence models contain all GORM annotations and table mappings
// 3. Mappers convert between domain aggregates and persistence models,
//    rehydrating through the validating constructors so corrupt rows surface
//    as validation errors instead of invalid in-memory state
// 4. Repositories use persistence models for database operations
//
// Structure:
// - base.go: shared owned-record fields (surrogate key, owner, timestamps)
// - contact.go, task.go, appointment.go, project.go: one model per aggregate
// - link.go: project-contact junction records
package models
