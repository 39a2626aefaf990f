package task

import "github.com/contactapp/backend/internal/domain/shared"

// Store persists Task aggregates scoped by owning user.
type Store = shared.TenantStore[*Task]

// AdminStore exposes the owner-less administrative operations for tasks.
type AdminStore = shared.AdminStore[*Task]
