// Package domain contains the core domain entities and types used by the
// application. These types represent the business concepts (users,
// organizations, domains and their scan artifacts) together with the graph
// edges connecting them, and are intentionally free of infrastructure
// concerns so they can be shared across packages.
package domain
