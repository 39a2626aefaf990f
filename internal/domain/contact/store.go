package contact

import "github.com/contactapp/backend/internal/domain/shared"

// Store persists Contact aggregates scoped by owning user.
type Store = shared.TenantStore[*Contact]

// AdminStore exposes the owner-less administrative operations for contacts.
type AdminStore = shared.AdminStore[*Contact]
