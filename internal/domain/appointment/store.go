package appointment

import "github.com/contactapp/backend/internal/domain/shared"

// Store persists Appointment aggregates scoped by owning user.
type Store = shared.TenantStore[*Appointment]

// AdminStore exposes the owner-less administrative operations for appointments.
type AdminStore = shared.AdminStore[*Appointment]
