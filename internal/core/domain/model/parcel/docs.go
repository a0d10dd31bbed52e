// Package parcel contains the parcel aggregate and its value objects.
//
// A parcel is the sole entity of the simulated agency. It is created once in
// pending_pickup status, mutated only through ApplyStatus (whether driven by
// a manual update or a simulation run) and never destroyed during the process
// lifetime. The append-only status history is the source of truth for the
// current status.
package parcel
