// Package error provides the structured error type shared by all tod packages.
//
// Package: error
// Title: tod Error Handling
// Description: Structured errors carrying a code, a severity, detail fields and a
//              stack trace. The timex package reports its range and format
//              violations through this type, the config package its invalid
//              settings, and the CLI turns the code into exit output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-14 v0.2.0: Reduced code set to time-of-day domain, added Is matching
//                       by code and chain-aware HasCode/GetCode
//
// Usage:
//
//	import coreerr "github.com/msto63/tod/foundation/core/error"
//
//	err := coreerr.New("hours out of range").
//		WithCode(coreerr.CodeValueOutOfRange).
//		WithDetail("field", "hours").
//		WithDetail("value", 41)
//
//	if coreerr.HasCode(err, coreerr.CodeValueOutOfRange) {
//		// reject input
//	}
//
// Errors created with a code match each other through errors.Is, so packages
// can export sentinel values and callers can test against them even when the
// concrete error carries additional details.
package error
