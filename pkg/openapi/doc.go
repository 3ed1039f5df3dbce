// Package openapi exposes the public contracts for loading OpenAPI documents
// and augmenting variant component schemas with their discriminator
// property. Implementations live under internal/openapi to keep kin-openapi
// dependencies hidden from consumers.
package openapi
