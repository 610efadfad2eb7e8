// Package platform is a multi-tenant line-of-business suite.
//
// # Overview
//
// ConectOne serves several verticals from one binary: accommodation
// listings with date-range bookings, schools with capacity-bounded student
// enrolment, classified adverts with publish lifetimes, a blog, a shared
// calendar with recurring events, global location reference data, a product
// catalog with CSV/Excel import and export, and PayFast payments with ITN
// webhook confirmation.
//
// # Architecture
//
//	┌──────────────────┐
//	│  REST + WS API   │
//	│  (Echo)          │
//	└────────┬─────────┘
//	         │
//	┌────────▼─────────┐      ┌──────────────────┐
//	│  Storage Layer   │◄─────┤  Scheduler       │
//	│  (Bun, generic   │      │  (hold expiry,   │
//	│   repositories)  │      │   advert expiry) │
//	└────────┬─────────┘      └──────────────────┘
//	         │
//	┌────────▼─────────┐
//	│ SQLite/Postgres/ │
//	│      MySQL       │
//	└──────────────────┘
//
// # Core Features
//
//   - Tenant isolation: every owned record carries a tenant ID, applied by
//     the storage layer on every query
//   - Generic repository and specification plumbing shared by all modules
//   - JWT authentication with refresh token rotation and per-route roles
//   - Tenant-scoped WebSocket feed of entity change events
//   - PayFast checkout signing and full ITN verification
//
// The conectone CLI (cmd/conectone) exposes server, migrate, seed, user and
// token subcommands.
package platform
