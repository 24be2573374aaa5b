// Package bankroll values a poker bankroll and computes the statistics of
// its sessions. It is designed to be local-first and stateless: every
// figure is derived from the records of a Book and from explicit Settings.
//
// The core functionalities include:
//   - Platform valuation: converting deposits, withdrawals, balances and
//     manual adjustments of accounts held in foreign currencies into a
//     single base currency, using the most recent exchange rate observed.
//   - Session normalization: a common view over online and live cash-game
//     sessions (duration net of breaks, effective hands, big blinds won,
//     results in base currency).
//   - Statistics: filtering sessions by period and by kind, platform, game
//     or venue, and reducing them to results, volume and streaks.
//   - Data persistence: encoding and decoding the book to and from a
//     human-readable JSONL file.
//
// This package serves as the foundational logic for the `bkr` command-line
// tool.
package bankroll
