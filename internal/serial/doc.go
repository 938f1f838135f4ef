// Package serial converts raw matched serial substrings into the ordered
// symbol sequences that check-digit arithmetic consumes.
package serial
