// Package shiftwatch tracks published attendance schedules. A batch pass
// fetches each tracked entity's schedule page, extracts the upcoming
// work-day records, and reconciles them against today to decide the
// statuses written back to the row store.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package shiftwatch
