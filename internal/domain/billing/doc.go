// Package billing computes per-tenant monthly invoices from occupancy,
// metered utility usage, and building-wide shared costs. The calculator
// is a pure function over its inputs; persistence and orchestration live
// in the application and infrastructure layers.
package billing
