// Package dataset loads the static airport and aircraft-type directories the
// server ships with.
//
// Both files are read lazily, validated entry by entry and kept in an
// expirable LRU so that an updated file is picked up after the configured
// cache window without restarting the server. Concurrent cold reads of the
// same file share a single load.
package dataset
