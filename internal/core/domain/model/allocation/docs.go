// Package allocation implements the vendor forecast negotiation aggregate:
// the platform requests an expected supply quantity from a vendor, the
// vendor responds with an actual available quantity, and the platform
// confirms or rejects it. Confirmed quantities are consumed by the
// fulfillment router as vendor-capacity input; the negotiation itself never
// interacts with the stock ledger.
package allocation
