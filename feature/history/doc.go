// Package history records which players were looked up and when.
//
// Every successful games or friends lookup stores a LookupRecord and upserts a
// RecentPlayer row per player, counting how often they appeared. The list of recent
// players lets a front end offer them again without the user retyping ids.
//
// The database is optional. Without one the Repository accepts writes and drops them,
// and the HTTP feature is not loaded.
package history
