// Package utils provides small helpers shared across the catalog service.
// The conversion helpers normalize loosely typed JSON values (the upstream API mixes
// strings, numbers and nulls for the same field) into plain Go values.
package utils
