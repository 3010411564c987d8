// Package utils provides small type-conversion helpers for the loosely
// typed scalar values that arrive from external API payloads.
package utils
