// Package domain defines core data models and interfaces shared across the app.
package domain
