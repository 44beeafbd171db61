// Package store reads and writes the JSON document that records which
// version of each script was last installed. Reads fill in defaults and
// recover from a corrupt file by backing it up and starting over; writes
// replace the whole file.
package store
