// Package services implements the driving port interfaces.
// Services contain the simulation logic and orchestrate calls to the
// driven ports (state store, scheduler, response generator).
//
// Every state change goes through driven.StateStore.Dispatch. Services
// that own timers expose Close, after which no further state changes
// are made on their behalf.
package services
