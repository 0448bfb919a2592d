// Package tradingday decides whether an FX broker is open for business on a
// given calendar date.
//
// Rules differ slightly per broker (FXTF, Saxo Bank, GMO Coin) but share the
// FX basics: weekends and New Year's Day are closed everywhere, Japanese
// holidays are trading days because London and New York stay open, and major
// US holidays drain enough liquidity that entry-point generation is skipped
// on the high-impact ones. Decisions are memoized in a small JSON file so
// repeated runs on the same day stay quiet.
package tradingday
