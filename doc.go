// Package tracker provides the types and rules for managing a single-user
// money ledger built around profit-first fund allocation. It keeps a strict
// separation between raw income, cost of production, distributable profit,
// and the per-fund balances that profit is split into.
//
// The package covers:
//   - Transaction Validation: Checking income and expense submissions against
//     the current fund state before any balance is touched.
//   - Profit Derivation: Computing distributable profit as income minus cost
//     of production, with exact decimal arithmetic.
//   - Profit Distribution: Allocating profit across funds by ordered
//     percentage shares, with the last share absorbing rounding remainders so
//     that every cent of profit lands in exactly one fund.
//   - Fund Ledger: An immutable-update ledger of funds whose balances always
//     equal lifetime inflow minus lifetime outflow.
//   - Tax Toggle: Rescaling the distribution to carve out (or give back) a
//     fixed tax share without changing the relative weight of the other funds.
//   - Snapshot Persistence: Encoding and decoding the whole state as a
//     versioned, human-readable JSON snapshot.
//
// The `ft` command-line tool is built entirely on this package: every verb
// goes through the same validation and mutation rules described here.
package tracker
