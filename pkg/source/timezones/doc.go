// Package timezones is a built-in choice source listing IANA time zones.
//
// The list is embedded under data/zones.txt. Questions reach it through
// choicesByUrl: Fetcher answers "timezones:" descriptors in process (for
// example "timezones:?q=europe&limit=20" with path "data"), and Handler
// serves the same JSON payload over HTTP for clients that fetch remotely.
package timezones
