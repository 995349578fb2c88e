// Package resolver turns user-supplied player identifiers into canonical Steam IDs.
//
// A token is one of:
//
//   - a canonical 17-digit Steam ID, returned unchanged;
//   - a 10-digit account suffix, which gets the individual-account prefix 7656119 when the
//     result is a valid individual Steam ID;
//   - anything else, treated as a vanity name and looked up through the catalog.
//
// Profile URLs (steamcommunity.com/id/<name> and steamcommunity.com/profiles/<id>) are
// reduced to their last path segment first.
package resolver
