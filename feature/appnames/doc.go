// Package appnames preloads the app name cache from the full Steam app list.
//
// Scraping store pages one app at a time is slow, so the complete list is fetched from
// ISteamApps/GetAppList, kept as a JSON snapshot in object storage, and bulk-written into
// the name cache. Writes never overwrite an existing name. Store titles in the list are
// HTML escaped and are unescaped before they are stored.
//
// Snapshots are named catalog/applist-<UTC timestamp>.json; seeding uses the newest one
// and only the configured number of snapshots is retained.
//
// # Routes
//
//   - POST /appnames/seed?refresh=true
//   - GET /appnames/:appid
package appnames
