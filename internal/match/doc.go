// Package match tests extracted auxiliary values against the declarative
// criteria a lookup entry carries: an exact literal or a regular expression.
package match
