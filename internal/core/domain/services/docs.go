// Package services contains domain services that coordinate behavior across
// aggregates and external collaborators.
//
// PaymentProcessing is the payment facade of the ordering workflow: it
// validates payment-method input before any gateway contact, translates
// gateway declines and faults into uniform domain errors, and guarantees that
// no payment infrastructure failure ever crashes the surrounding order flow.
package services
